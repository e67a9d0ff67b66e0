package composer

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhubert/murmur/internal/chat"
	"github.com/zhubert/murmur/internal/emoji"
	perrors "github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/moderation"
	"github.com/zhubert/murmur/internal/status"
)

func TestMain(m *testing.M) {
	_ = logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

type published struct {
	content, background, text string
}

func recordingComposer() (*StatusComposer, *[]published) {
	var calls []published
	c := NewStatusComposer(func(content, bg, text string) {
		calls = append(calls, published{content, bg, text})
	}, nil)
	return c, &calls
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"shorter", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"longer", "abcdef", 5, "abcde"},
		{"zero", "abc", 0, ""},
		{"combining", "ééé", 2, "éé"},
		{"zwj family", "👩‍👩‍👧👩‍👩‍👧", 1, "👩‍👩‍👧"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.limit))
		})
	}
}

func TestStatusComposer_SetContentCapsAt200(t *testing.T) {
	c, _ := recordingComposer()
	c.SetContent(strings.Repeat("x", 250))

	assert.Equal(t, status.MaxContentLength, uniseg.GraphemeClusterCount(c.Content()))
	assert.Zero(t, c.Remaining())

	c.SetContent("hi")
	assert.Equal(t, status.MaxContentLength-2, c.Remaining())
}

func TestStatusComposer_WhitespaceDoesNotPublish(t *testing.T) {
	c, calls := recordingComposer()
	c.SetContent("  ")

	assert.False(t, c.CanPublish())
	err := c.Publish()
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.KindInvalid))
	assert.Empty(t, *calls)
	assert.Equal(t, "  ", c.Content())
}

func TestStatusComposer_PublishHello(t *testing.T) {
	c, calls := recordingComposer()
	c.SetContent("Hello")
	require.True(t, c.SelectBackground("#0EA5E9"))

	require.NoError(t, c.Publish())
	require.Len(t, *calls, 1)
	assert.Equal(t, published{"Hello", "#0EA5E9", "#FFFFFF"}, (*calls)[0])
}

func TestStatusComposer_PublishTrimsAndResets(t *testing.T) {
	c, calls := recordingComposer()
	c.SetContent("  weekend plans  ")
	c.SelectSwatch(7)

	require.NoError(t, c.Publish())
	require.Len(t, *calls, 1)
	assert.Equal(t, published{"weekend plans", "#FFFFFF", "#222222"}, (*calls)[0])

	assert.Empty(t, c.Content())
	assert.Equal(t, status.DefaultSwatch, c.Swatch())
	assert.False(t, c.CanPublish())
}

func TestStatusComposer_Swatches(t *testing.T) {
	c, _ := recordingComposer()

	c.SelectSwatch(3)
	assert.Equal(t, 3, c.Swatch())
	c.SelectSwatch(99)
	assert.Equal(t, 3, c.Swatch())
	c.SelectSwatch(-1)
	assert.Equal(t, 3, c.Swatch())

	c.SelectSwatch(0)
	c.CycleSwatch(-1)
	assert.Equal(t, len(status.Palette)-1, c.Swatch())
	c.CycleSwatch(1)
	assert.Equal(t, 0, c.Swatch())

	assert.False(t, c.SelectBackground("#123456"))
	assert.Equal(t, 0, c.Swatch())

	bg, text := c.Colors()
	assert.Equal(t, "#0EA5E9", bg)
	assert.Equal(t, "#FFFFFF", text)
}

func TestStatusComposer_Moderation(t *testing.T) {
	f, err := moderation.NewFilter([]string{"badger"}, '*')
	require.NoError(t, err)

	var got string
	c := NewStatusComposer(func(content, _, _ string) { got = content }, f)
	c.SetContent("my badger")
	require.NoError(t, c.Publish())
	assert.Equal(t, "my ******", got)
}

func TestStatusComposer_NilCallback(t *testing.T) {
	c := NewStatusComposer(nil, nil)
	c.SetContent("ok")
	assert.NoError(t, c.Publish())
	assert.Empty(t, c.Content())
}

func newThread(t *testing.T) (*chat.Store, *MessageComposer, *emoji.Picker) {
	t.Helper()
	store := chat.NewStore([]chat.Chat{{ID: "c1", Name: "Sarah"}})
	picker := emoji.NewPicker(emoji.Default(), 0)
	fixed := time.Date(2024, 5, 4, 9, 7, 0, 0, time.UTC)
	c := NewMessageComposer(store, WithPicker(picker), WithClock(func() time.Time { return fixed }))
	c.SetChat("c1")
	return store, c, picker
}

func TestMessageComposer_SendHi(t *testing.T) {
	store, c, _ := newThread(t)
	c.SetInput("Hi")

	m, err := c.Send()
	require.NoError(t, err)

	thread, err := store.Get("c1")
	require.NoError(t, err)
	require.Len(t, thread.Messages, 1)
	assert.Equal(t, chat.Me, thread.Messages[0].Sender)
	assert.Equal(t, "Hi", thread.Messages[0].Text)
	assert.Equal(t, "09:07", thread.Messages[0].TimeLabel)
	assert.False(t, thread.Messages[0].IsSticker)
	assert.Equal(t, m, thread.Messages[0])
	assert.Empty(t, c.Input())
}

func TestMessageComposer_WhitespaceIsNoop(t *testing.T) {
	store, c, _ := newThread(t)
	c.SetInput(" \t ")

	assert.False(t, c.CanSend())
	_, err := c.Send()
	assert.True(t, perrors.Is(err, perrors.KindInvalid))

	thread, _ := store.Get("c1")
	assert.Empty(t, thread.Messages)
	assert.Equal(t, " \t ", c.Input())
}

func TestMessageComposer_SendToMissingChatKeepsDraft(t *testing.T) {
	_, c, _ := newThread(t)
	c.SetChat("gone")
	c.SetInput("hello?")

	_, err := c.Send()
	assert.True(t, perrors.Is(err, perrors.KindNotFound))
	assert.Equal(t, "hello?", c.Input())
}

func TestMessageComposer_SelectSticker(t *testing.T) {
	store, c, picker := newThread(t)
	picker.Open()
	picker.SetTab(emoji.TabStickers)

	m, err := c.SelectSticker("🎉")
	require.NoError(t, err)
	assert.True(t, m.IsSticker)
	assert.Equal(t, "🎉", m.Text)
	assert.False(t, picker.IsOpen())

	thread, _ := store.Get("c1")
	require.Len(t, thread.Messages, 1)
	assert.True(t, thread.Messages[0].IsSticker)
	assert.Equal(t, "🎉", thread.Messages[0].Text)
}

func TestMessageComposer_SelectEmojiSendsSticker(t *testing.T) {
	store, c, picker := newThread(t)
	picker.Open()
	c.SetInput("draft stays")

	m, err := c.SelectEmoji("👍")
	require.NoError(t, err)
	assert.True(t, m.IsSticker)
	assert.False(t, picker.IsOpen())
	assert.Equal(t, "draft stays", c.Input())

	last, ok := store.LastMessage("c1")
	require.True(t, ok)
	assert.Equal(t, "👍", last.Text)
}

func TestMessageComposer_InsertEmoji(t *testing.T) {
	_, c, picker := newThread(t)
	picker.Open()
	c.SetInput("nice ")

	c.InsertEmoji("🔥")
	assert.Equal(t, "nice 🔥", c.Input())
	assert.True(t, picker.IsOpen())
}

func TestMessageComposer_SetChatDiscardsDraft(t *testing.T) {
	_, c, _ := newThread(t)
	c.SetInput("half typed")

	c.SetChat("c1")
	assert.Equal(t, "half typed", c.Input())

	c.SetChat("c2")
	assert.Empty(t, c.Input())
	assert.Equal(t, "c2", c.ChatID())
}

func TestMessageComposer_Moderation(t *testing.T) {
	f, err := moderation.NewFilter([]string{"snake"}, '#')
	require.NoError(t, err)

	store := chat.NewStore([]chat.Chat{{ID: "c1"}})
	c := NewMessageComposer(store, WithFilter(f))
	c.SetChat("c1")
	c.SetInput("a snake!")

	m, err := c.Send()
	require.NoError(t, err)
	assert.Equal(t, "a #####!", m.Text)
}
