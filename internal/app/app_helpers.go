package app

import (
	tea "charm.land/bubbletea/v2"
)

// copyLastMessage puts the newest message of the open chat on the clipboard.
func (m *Model) copyLastMessage() (tea.Model, tea.Cmd) {
	last, ok := m.chats.LastMessage(m.thread.ChatID())
	if !ok {
		return m, m.ShowFlashInfo("Nothing to copy")
	}
	if err := m.clipboard.WriteText(last.Text); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
		return m, m.ShowFlashError("Failed to copy to clipboard")
	}
	return m, m.ShowFlashSuccess("Copied last message")
}

// pasteFromClipboard inserts clipboard text at the input cursor. Most
// terminals turn ctrl+v into a paste event that reaches the input directly;
// this covers the ones that send the raw key.
func (m *Model) pasteFromClipboard() (tea.Model, tea.Cmd) {
	text, err := m.clipboard.ReadText()
	if err != nil {
		m.log.Warn("clipboard read failed", "error", err)
		return m, m.ShowFlashError("Failed to read clipboard")
	}
	if text == "" {
		return m, nil
	}
	m.thread.InsertText(text)
	return m, nil
}
