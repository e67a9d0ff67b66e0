package composer

import (
	"strings"
	"time"

	"github.com/zhubert/murmur/internal/chat"
	perrors "github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/moderation"
)

// Picker is the emoji/sticker picker the composer closes after a selection.
type Picker interface {
	Close()
}

// Appender stores messages in a thread.
type Appender interface {
	Append(chatID string, m chat.Message) error
}

// MessageComposer owns the draft of the active thread and appends what the
// user sends to it.
type MessageComposer struct {
	store  Appender
	picker Picker
	filter *moderation.Filter
	now    func() time.Time

	chatID string
	input  string
}

// MessageOption configures a MessageComposer.
type MessageOption func(*MessageComposer)

// WithPicker sets the picker to close after a selection.
func WithPicker(p Picker) MessageOption {
	return func(c *MessageComposer) { c.picker = p }
}

// WithFilter masks blocked words in sent text.
func WithFilter(f *moderation.Filter) MessageOption {
	return func(c *MessageComposer) { c.filter = f }
}

// WithClock overrides the time source used for time labels.
func WithClock(now func() time.Time) MessageOption {
	return func(c *MessageComposer) { c.now = now }
}

// NewMessageComposer returns a composer appending to store.
func NewMessageComposer(store Appender, opts ...MessageOption) *MessageComposer {
	c := &MessageComposer{store: store, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetChat switches the active thread and discards the draft.
func (c *MessageComposer) SetChat(chatID string) {
	if c.chatID != chatID {
		c.input = ""
	}
	c.chatID = chatID
}

// ChatID returns the active thread.
func (c *MessageComposer) ChatID() string { return c.chatID }

// SetInput replaces the draft.
func (c *MessageComposer) SetInput(s string) { c.input = s }

// Input returns the draft.
func (c *MessageComposer) Input() string { return c.input }

// CanSend reports whether the trimmed draft is non-empty.
func (c *MessageComposer) CanSend() bool {
	return strings.TrimSpace(c.input) != ""
}

// Send appends the trimmed draft as a message from "me" and clears the
// draft. A whitespace-only draft is left alone and nothing is appended.
func (c *MessageComposer) Send() (chat.Message, error) {
	if !c.CanSend() {
		return chat.Message{}, perrors.EmptyContent("composer.Send")
	}
	text := c.filter.Apply(strings.TrimSpace(c.input))
	m := chat.NewMessage(chat.Me, text, c.now())
	if err := c.store.Append(c.chatID, m); err != nil {
		return chat.Message{}, err
	}
	c.input = ""
	return m, nil
}

// SelectEmoji sends glyph as a sticker message and closes the picker.
func (c *MessageComposer) SelectEmoji(glyph string) (chat.Message, error) {
	return c.sendSticker(glyph)
}

// SelectSticker sends glyph as a sticker message and closes the picker.
func (c *MessageComposer) SelectSticker(glyph string) (chat.Message, error) {
	return c.sendSticker(glyph)
}

// InsertEmoji appends glyph to the draft. The picker stays open.
func (c *MessageComposer) InsertEmoji(glyph string) {
	c.input += glyph
}

func (c *MessageComposer) sendSticker(glyph string) (chat.Message, error) {
	if c.picker != nil {
		defer c.picker.Close()
	}
	if strings.TrimSpace(glyph) == "" {
		return chat.Message{}, perrors.EmptyContent("composer.SelectSticker")
	}
	m := chat.NewSticker(chat.Me, glyph, c.now())
	if err := c.store.Append(c.chatID, m); err != nil {
		return chat.Message{}, err
	}
	logger.WithChat(c.chatID).Debug("sticker sent", "glyph", glyph)
	return m, nil
}
