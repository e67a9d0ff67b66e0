package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/murmur/internal/chat"
	"github.com/zhubert/murmur/internal/emoji"
	"github.com/zhubert/murmur/internal/keys"
)

// handlePickerKey handles keys while the emoji/sticker picker is open.
func (m *Model) handlePickerKey(key string, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.picker.IsSearching() {
		picker, cmd := m.picker.Update(msg)
		m.picker = picker
		return m, cmd
	}

	p := m.picker.Picker()
	switch key {
	case keys.Escape, keys.CtrlE:
		m.picker.Close()
	case "/":
		return m, m.picker.StartSearch()
	case keys.Tab:
		p.SwitchTab()
	case "[":
		p.CycleCategory(-1)
	case "]":
		p.CycleCategory(1)
	case keys.Left, "h":
		p.Move(-1, 0)
	case keys.Right, "l":
		p.Move(1, 0)
	case keys.Up, "k":
		p.Move(0, -1)
	case keys.Down, "j":
		p.Move(0, 1)
	case keys.Enter:
		return m.sendPickerSelection()
	case "i":
		m.insertPickerSelection()
	}
	return m, nil
}

// sendPickerSelection sends the highlighted emoji or sticker as a sticker
// message. The composer closes the picker.
func (m *Model) sendPickerSelection() (tea.Model, tea.Cmd) {
	item, ok := m.picker.Picker().Selected()
	if !ok {
		return m, nil
	}

	var (
		sent chat.Message
		err  error
	)
	if m.picker.Picker().Tab() == emoji.TabStickers {
		sent, err = m.messages.SelectSticker(item.Glyph)
	} else {
		sent, err = m.messages.SelectEmoji(item.Glyph)
	}
	if err != nil {
		m.log.Warn("sticker not sent", "chat", m.messages.ChatID(), "error", err)
		return m, m.ShowFlashError("Sticker not sent")
	}
	m.log.Debug("sticker sent", "chat", m.messages.ChatID(), "id", sent.ID)
	m.refreshChats()
	return m, nil
}

// insertPickerSelection types the highlighted emoji into the draft and
// leaves the picker open. Stickers are only ever sent whole.
func (m *Model) insertPickerSelection() {
	if m.picker.Picker().Tab() != emoji.TabEmoji {
		return
	}
	item, ok := m.picker.Picker().Selected()
	if !ok {
		return
	}
	m.messages.SetInput(m.thread.GetInput())
	m.messages.InsertEmoji(item.Glyph)
	m.thread.SetInput(m.messages.Input())
}
