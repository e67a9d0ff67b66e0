package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/murmur/internal/chat"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/notification"
)

// ReplyDueMsg is sent when a contact's canned reply is ready.
type ReplyDueMsg struct {
	ChatID string
	Text   string
}

// NotificationFailedMsg reports a desktop notification that could not be
// shown.
type NotificationFailedMsg struct {
	Err error
}

// scheduleReply arranges for the contact to answer after the configured
// delay. Channels never answer and auto reply can be switched off.
func (m *Model) scheduleReply(chatID string) tea.Cmd {
	if !m.config.AutoReply || len(m.replies) == 0 {
		return nil
	}
	c, err := m.chats.Get(chatID)
	if err != nil || c.Kind == chat.KindChannel {
		return nil
	}

	text := m.replies[m.replyCursor%len(m.replies)]
	m.replyCursor++
	m.pendingReplies[chatID]++

	var cmds []tea.Cmd
	if m.thread.ChatID() == chatID {
		cmds = append(cmds, m.thread.SetTyping(true))
	}
	delay := m.config.ReplyDelay.D()
	cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return ReplyDueMsg{ChatID: chatID, Text: text}
	}))
	logger.WithChat(chatID).Debug("reply scheduled", "delay", delay)
	return tea.Batch(cmds...)
}

// handleReplyDue appends the reply. A reply to a chat that is not on screen
// marks it unread and, when enabled, raises a desktop notification.
func (m *Model) handleReplyDue(msg ReplyDueMsg) (tea.Model, tea.Cmd) {
	if m.pendingReplies[msg.ChatID] > 0 {
		m.pendingReplies[msg.ChatID]--
	}
	if m.pendingReplies[msg.ChatID] == 0 {
		delete(m.pendingReplies, msg.ChatID)
	}

	c, err := m.chats.Get(msg.ChatID)
	if err != nil {
		m.log.Warn("reply for unknown chat", "chat", msg.ChatID, "error", err)
		return m, nil
	}

	reply := chat.NewMessage(c.ID, msg.Text, time.Now())
	if err := m.chats.Append(c.ID, reply); err != nil {
		m.log.Warn("append reply failed", "chat", c.ID, "error", err)
		return m, nil
	}

	visible := m.thread.ChatID() == c.ID
	if visible && m.pendingReplies[c.ID] == 0 {
		m.thread.SetTyping(false)
	}
	if !visible {
		if err := m.chats.MarkUnread(c.ID); err != nil {
			m.log.Warn("mark unread failed", "chat", c.ID, "error", err)
		}
	}
	m.refreshChats()

	if !m.config.GetNotificationsEnabled() {
		return m, nil
	}
	return m, m.notifyReply(c.Name, msg.Text)
}

// notifyReply shows the desktop notification off the update loop.
func (m *Model) notifyReply(from, text string) tea.Cmd {
	n := m.notifier
	return func() tea.Msg {
		if err := notification.ReplyReceived(n, from, text); err != nil {
			return NotificationFailedMsg{Err: err}
		}
		return nil
	}
}
