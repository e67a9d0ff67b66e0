package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// showCreateStatus opens the create-status dialog on the current draft.
func (m *Model) showCreateStatus() (tea.Model, tea.Cmd) {
	m.list.BlurRail()
	m.modal.Show(modals.NewCreateStatusState(m.draft))
	return m, nil
}

// handleCreateStatusModal handles key events for the create-status modal.
// Esc keeps the draft for next time; enter publishes it.
func (m *Model) handleCreateStatusModal(key string, msg tea.KeyPressMsg, _ *modals.CreateStatusState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if !m.draft.CanPublish() {
			// Nothing to post; the dialog stays open.
			return m, nil
		}
		m.publishErr = nil
		if err := m.draft.Publish(); err != nil {
			return m, nil
		}
		if m.publishErr != nil {
			m.modal.SetError("Could not post status")
			return m, nil
		}
		m.modal.Hide()
		m.refreshStatuses()
		return m, m.ShowFlashSuccess("Status posted")
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// publishStatus is the status composer's publish callback. It stores the
// status under the configured display name.
func (m *Model) publishStatus(content, background, text string) {
	st, err := m.statuses.Publish(content, background, text, m.config.GetUserName())
	if err != nil {
		m.log.Error("publish status failed", "error", err)
		m.publishErr = err
		return
	}
	m.log.Info("status published", "id", st.ID, "background", background)
}
