package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/playback"
	"github.com/zhubert/murmur/internal/ui"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to focused panel

	case tea.PasteMsg:
		m.log.Debug("paste received", "len", len(msg.Content), "focus", m.focus)

	case playback.TickMsg:
		return m.handlePlaybackTick(msg)

	case ReplyDueMsg:
		return m.handleReplyDue(msg)

	case NotificationFailedMsg:
		m.log.Warn("notification failed", "error", msg.Err)
		return m, nil

	case StartupModalMsg:
		return m.handleStartupModals()

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)
	}

	// Update modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
	}

	// Handle tick messages - panels need these regardless of focus
	if cmd, handled := m.handleTickMessages(msg); handled {
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Update focused panel for other messages
	if m.focus == FocusChatList {
		list, cmd := m.list.Update(msg)
		m.list = list
		cmds = append(cmds, cmd)
		if m.list.IsSearchMode() {
			m.refreshChats()
		}
	} else {
		thread, cmd := m.thread.Update(msg)
		m.thread = thread
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should fall through
// to the focused panel for handling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "focus", m.focus, "modal", m.modal.IsVisible())

	// Handle ctrl+c specially - always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// Overlays own the keyboard while open
	if m.viewer.IsOpen() {
		return m.handleViewerKey(key)
	}
	if m.picker.IsOpen() {
		return m.handlePickerKey(key, msg)
	}

	if key == keys.Escape {
		if result, cmd, handled := m.handleEscapeKey(); handled {
			return result, cmd
		}
	}

	// Search input: enter keeps the filter and opens the selection, every
	// other key except the ones the list handles goes to the search field.
	if m.focus == FocusChatList && m.list.IsSearchMode() {
		if key == keys.Enter {
			m.list.Update(msg)
			return m.handleEnterKey()
		}
		return nil, nil
	}

	if m.focus == FocusThread && m.thread.HasChat() {
		if result, cmd, handled := m.handleThreadKeys(key); handled {
			return result, cmd
		}
	}

	// Try executing from shortcut registry
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if key == keys.Enter && m.focus == FocusChatList {
		return m.handleEnterKey()
	}

	// Key not handled - return nil to signal it should fall through to focused panel
	return nil, nil
}

// handleEscapeKey backs out of the innermost mode: search, then the status
// rail, then the thread.
func (m *Model) handleEscapeKey() (tea.Model, tea.Cmd, bool) {
	if m.list.IsSearchMode() {
		m.list.ExitSearchMode()
		m.refreshChats()
		return m, nil, true
	}
	if m.list.IsRailFocused() {
		m.list.BlurRail()
		return m, nil, true
	}
	if m.focus == FocusThread {
		return m, m.setFocus(FocusChatList), true
	}
	return m, nil, false
}

// handleThreadKeys handles keys that act on the input while the thread is
// focused.
func (m *Model) handleThreadKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case keys.Enter:
		result, cmd := m.sendMessage()
		return result, cmd, true
	case keys.CtrlV:
		result, cmd := m.pasteFromClipboard()
		return result, cmd, true
	}
	return m, nil, false
}

// handleEnterKey opens whatever is selected in the chat list: a rail tile
// or a chat.
func (m *Model) handleEnterKey() (tea.Model, tea.Cmd) {
	if m.list.IsRailFocused() {
		mine, idx := m.list.RailSelection()
		if mine {
			return m.showCreateStatus()
		}
		return m.openViewer(idx)
	}
	c, ok := m.list.SelectedChat()
	if !ok {
		return m, nil
	}
	return m, m.openChat(c.ID)
}

// handleTickMessages handles the animation and timer ticks
func (m *Model) handleTickMessages(msg tea.Msg) (tea.Cmd, bool) {
	switch msg.(type) {
	case ui.TypingTickMsg:
		thread, cmd := m.thread.Update(msg)
		m.thread = thread
		return cmd, true
	case ui.FlashTickMsg:
		// Check if flash message has expired
		if m.footer.ClearIfExpired() {
			return nil, true
		}
		// Flash still active, continue ticking
		if m.footer.HasFlash() {
			return ui.FlashTick(), true
		}
		return nil, true
	}
	return nil, false
}

// sendMessage sends the draft in the thread input
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	m.messages.SetInput(m.thread.GetInput())
	if !m.messages.CanSend() {
		// Whitespace-only drafts are ignored.
		return m, nil
	}

	chatID := m.messages.ChatID()
	sent, err := m.messages.Send()
	if err != nil {
		m.log.Warn("send failed", "chat", chatID, "error", err)
		return m, m.ShowFlashError("Message not sent")
	}
	m.thread.ClearInput()
	m.refreshChats()
	m.log.Debug("message sent", "chat", chatID, "id", sent.ID)

	return m, m.scheduleReply(chatID)
}
