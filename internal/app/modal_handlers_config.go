package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/ui"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// handleSettingsModal handles key events for the Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		// Apply theme if changed
		if state.ThemeChanged() {
			selected := ui.ThemeName(state.GetSelectedTheme())
			ui.SetTheme(selected)
			m.config.SetTheme(string(selected))
			m.refreshChats()
		}
		m.config.SetUserName(state.GetUserName())
		m.header.SetUserName(m.config.GetUserName())
		m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())

		if err := m.config.Save(); err != nil {
			m.log.Error("failed to save settings", "error", err)
			m.modal.SetError("Failed to save: " + err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, m.ShowFlashSuccess("Settings saved")
	}
	// Forward other keys to modal for text input handling
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
