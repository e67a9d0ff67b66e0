package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
//
// Modal handlers are organized by domain:
//   - modal_handlers_status.go: Status creation
//   - modal_handlers_config.go: Settings (theme, display name, notifications)
//   - modal_handlers_navigation.go: Navigation/info (help, welcome)
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	// Status modals (modal_handlers_status.go)
	case *modals.CreateStatusState:
		return m.handleCreateStatusModal(key, msg, s)

	// Config modals (modal_handlers_config.go)
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)

	// Navigation modals (modal_handlers_navigation.go)
	case *modals.WelcomeState:
		return m.handleWelcomeModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	// Default: update modal input (for text-based modals)
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
