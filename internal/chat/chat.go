// Package chat holds the conversations shown in the chat list and the
// in-memory store that backs them.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Me is the sender tag of messages written on this terminal.
const Me = "me"

// TimeLayout formats message time labels.
const TimeLayout = "15:04"

// Kind distinguishes direct chats from groups and broadcast channels.
type Kind string

const (
	KindChat    Kind = "chat"
	KindGroup   Kind = "group"
	KindChannel Kind = "channel"
)

// Message is a single line in a thread.
type Message struct {
	ID        string    `yaml:"id"`
	Sender    string    `yaml:"sender"`
	Text      string    `yaml:"text"`
	TimeLabel string    `yaml:"time"`
	IsSticker bool      `yaml:"sticker"`
	Reactions []string  `yaml:"reactions,omitempty"`
	SentAt    time.Time `yaml:"-"`
}

// IsMine reports whether the message was sent by the local user.
func (m Message) IsMine() bool {
	return m.Sender == Me
}

// NewMessage builds a text message stamped with now.
func NewMessage(sender, text string, now time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		TimeLabel: now.Format(TimeLayout),
		SentAt:    now,
	}
}

// NewSticker builds a sticker message carrying a single glyph.
func NewSticker(sender, glyph string, now time.Time) Message {
	m := NewMessage(sender, glyph, now)
	m.IsSticker = true
	return m
}

// Chat is one entry in the chat list: a direct chat, group or channel.
type Chat struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	AvatarRef string    `yaml:"avatar"`
	Kind      Kind      `yaml:"kind"`
	Online    bool      `yaml:"online"`
	Unread    int       `yaml:"unread"`
	Messages  []Message `yaml:"messages"`
}

// Last returns the newest message, if any.
func (c Chat) Last() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// Presence is the line shown under the name in the thread header.
func (c Chat) Presence() string {
	switch {
	case c.Kind == KindChannel:
		return "channel"
	case c.Kind == KindGroup:
		return "group"
	case c.Online:
		return "online"
	default:
		return "last seen recently"
	}
}

// TimeLabel is the time of the newest message, or "" for an empty thread.
func (c Chat) TimeLabel() string {
	last, ok := c.Last()
	if !ok {
		return ""
	}
	return last.TimeLabel
}

// Preview is the one-line summary shown under the chat name.
func (c Chat) Preview() string {
	last, ok := c.Last()
	if !ok {
		return ""
	}
	if last.IsMine() {
		return "You: " + last.Text
	}
	return last.Text
}
