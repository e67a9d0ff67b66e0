package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/ui"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key          string                              // The key binding (e.g., "s", "ctrl+e")
	DisplayKey   string                              // Display name in help (e.g., "Tab"); defaults to Key
	Description  string                              // Human-readable description
	Category     string                              // Section for help modal grouping
	RequiresChat bool                                // A chat must be open in the thread
	RequiresList bool                                // Must not be typing in the thread
	Handler      func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition    func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryChats      = "Chats"
	CategoryStatuses   = "Statuses"
	CategoryThread     = "Thread (when focused)"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryChats,
	CategoryStatuses,
	CategoryThread,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		DisplayKey:  "Tab",
		Description: "Switch between chat list and thread",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleFocus,
		Condition:   func(m *Model) bool { return m.thread.HasChat() },
	},
	{
		Key:          "/",
		Description:  "Search chats",
		Category:     CategoryNavigation,
		RequiresList: true,
		Handler:      shortcutSearch,
		Condition:    func(m *Model) bool { return !m.list.IsSearchMode() },
	},
	{
		Key:          "[",
		Description:  "Previous chat kind tab",
		Category:     CategoryNavigation,
		RequiresList: true,
		Handler:      shortcutPrevKind,
	},
	{
		Key:          "]",
		Description:  "Next chat kind tab",
		Category:     CategoryNavigation,
		RequiresList: true,
		Handler:      shortcutNextKind,
	},

	// Chats
	{
		Key:          "u",
		Description:  "Mark selected chat unread",
		Category:     CategoryChats,
		RequiresList: true,
		Handler:      shortcutMarkUnread,
		Condition: func(m *Model) bool {
			_, ok := m.list.SelectedChat()
			return ok && !m.list.IsRailFocused()
		},
	},

	// Statuses
	{
		Key:          "r",
		Description:  "Browse statuses",
		Category:     CategoryStatuses,
		RequiresList: true,
		Handler:      shortcutStatusRail,
		Condition:    func(m *Model) bool { return !m.list.IsRailFocused() },
	},
	{
		Key:          "s",
		Description:  "Post a new status",
		Category:     CategoryStatuses,
		RequiresList: true,
		Handler:      shortcutNewStatus,
	},

	// Thread
	{
		Key:          keys.CtrlE,
		DisplayKey:   "ctrl-e",
		Description:  "Emoji and sticker picker",
		Category:     CategoryThread,
		RequiresChat: true,
		Handler:      shortcutPicker,
	},
	{
		Key:          keys.CtrlY,
		DisplayKey:   "ctrl-y",
		Description:  "Copy last message",
		Category:     CategoryThread,
		RequiresChat: true,
		Handler:      shortcutCopyLast,
	},

	// General
	// Note: "?" (help) is handled specially in ExecuteShortcut to avoid init cycle
	{
		Key:          "t",
		Description:  "Settings and theme",
		Category:     CategoryGeneral,
		RequiresList: true,
		Handler:      shortcutSettings,
	},
	{
		Key:          "q",
		Description:  "Quit application",
		Category:     CategoryGeneral,
		RequiresList: true,
		Handler:      shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:          "?",
	Description:  "Show this help",
	Category:     CategoryGeneral,
	RequiresList: true,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
// These are context-sensitive or informational entries.
var DisplayOnlyShortcuts = []Shortcut{
	// Navigation (display-only)
	{DisplayKey: "↑/↓ or j/k", Description: "Move in the chat list", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Open chat / Send message", Category: CategoryNavigation},
	{DisplayKey: "Esc", Description: "Cancel search / Back to list", Category: CategoryNavigation},

	// Statuses (display-only)
	{DisplayKey: "←/→", Description: "Previous / next status", Category: CategoryStatuses},
	{DisplayKey: "Space", Description: "Pause or resume a status", Category: CategoryStatuses},

	// Thread (display-only, context-sensitive)
	{DisplayKey: "PgUp/PgDn", Description: "Scroll messages", Category: CategoryThread},
	{DisplayKey: "ctrl-v", Description: "Paste text", Category: CategoryThread},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresList && m.focus == FocusThread {
		return false
	}
	if s.RequiresChat && !m.thread.HasChat() {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// It checks all guards (RequiresList, RequiresChat, Condition) before executing.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// If the list is in search mode, don't process shortcuts - let keys go to search input
	if m.list.IsSearchMode() {
		m.log.Debug("search mode, key goes to search input", "key", key)
		return m, nil, false
	}

	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false // Guard failed, let key propagate to the input
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key, "focus", m.focus, "hasChat", m.thread.HasChat())
			return m, nil, false // Guard failed, let key propagate to the focused panel
		}
		m.log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state. This filters out shortcuts whose
// guards (RequiresList, RequiresChat, Condition) would fail.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	// Collect shortcuts by category
	categories := make(map[string][]modals.HelpShortcut)

	// Add executable shortcuts that are applicable
	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}

	// Thread display-only entries only matter with a chat open
	for _, s := range displayOnly {
		if s.Category == CategoryThread && !m.thread.HasChat() {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}

	// Build sections in the correct order
	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}

	return sections
}

func displayKey(s Shortcut) string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	return s.Key
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.toggleFocus()
	return m, cmd
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	m.list.BlurRail()
	return m, m.list.EnterSearchMode()
}

func shortcutPrevKind(m *Model) (tea.Model, tea.Cmd) {
	m.list.CycleKind(-1)
	return m, nil
}

func shortcutNextKind(m *Model) (tea.Model, tea.Cmd) {
	m.list.CycleKind(1)
	return m, nil
}

func shortcutMarkUnread(m *Model) (tea.Model, tea.Cmd) {
	c, _ := m.list.SelectedChat()
	if err := m.chats.MarkUnread(c.ID); err != nil {
		m.log.Warn("mark unread failed", "chat", c.ID, "error", err)
		return m, m.ShowFlashError("Chat not found")
	}
	m.refreshChats()
	return m, m.ShowFlashInfo("Marked " + c.Name + " as unread")
}

func shortcutStatusRail(m *Model) (tea.Model, tea.Cmd) {
	m.list.FocusRail()
	return m, nil
}

func shortcutNewStatus(m *Model) (tea.Model, tea.Cmd) {
	return m.showCreateStatus()
}

func shortcutPicker(m *Model) (tea.Model, tea.Cmd) {
	m.setFocus(FocusThread)
	m.picker.Open()
	return m, nil
}

func shortcutCopyLast(m *Model) (tea.Model, tea.Cmd) {
	return m.copyLastMessage()
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	for i, n := range names {
		themes[i] = string(n)
	}
	m.modal.Show(modals.NewSettingsState(
		themes,
		ui.ThemeDisplayNames(),
		string(ui.CurrentThemeName()),
		m.config.GetUserName(),
		m.config.GetNotificationsEnabled(),
	))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(ShortcutRegistry, helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpState(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
