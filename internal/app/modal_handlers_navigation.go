package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// handleStartupModals shows the welcome modal to first-time users
func (m *Model) handleStartupModals() (tea.Model, tea.Cmd) {
	if !m.config.HasSeenWelcome() {
		m.log.Info("showing welcome modal (first-time user)")
		m.modal.Show(modals.NewWelcomeState())
	}
	return m, nil
}

// handleWelcomeModal handles key events for the Welcome modal.
func (m *Model) handleWelcomeModal(key string, _ tea.KeyPressMsg, _ *modals.WelcomeState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter, keys.Escape:
		// Mark welcome as shown and save
		m.config.MarkWelcomeShown()
		m.modal.Hide()
		return m, m.saveConfigOrFlash()
	}
	return m, nil
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		// Trigger the selected shortcut
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			return m, func() tea.Msg {
				return modals.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return m, nil
	}
	// Forward navigation keys to the modal
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpShortcutTrigger handles shortcuts triggered from the help modal.
// It normalizes display keys and delegates to the shortcut registry.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	normalizedKey := normalizeHelpDisplayKey(key)
	if normalizedKey == "" {
		return m, nil // Display-only shortcut, no action
	}

	result, cmd, _ := m.ExecuteShortcut(normalizedKey)
	return result, cmd
}

// normalizeHelpDisplayKey converts help modal display keys to actual key values.
// Returns empty string for display-only shortcuts that shouldn't be executed.
func normalizeHelpDisplayKey(displayKey string) string {
	switch displayKey {
	// Display-only shortcuts (informational, no action)
	case "↑/↓ or j/k", "Enter", "Esc", "←/→", "Space", "PgUp/PgDn", "ctrl-v":
		return ""
	case "Tab":
		return keys.Tab
	}
	// "ctrl-e" -> "ctrl+e"
	if rest, ok := strings.CutPrefix(displayKey, "ctrl-"); ok {
		return "ctrl+" + rest
	}
	return strings.ToLower(displayKey)
}
