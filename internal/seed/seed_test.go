package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d := Default()

	require.NotEmpty(t, d.Chats)
	require.NotEmpty(t, d.Statuses)
	require.NotEmpty(t, d.Replies)

	for _, st := range d.Statuses {
		assert.NoError(t, st.Validate(), st.ID)
	}

	chats, statuses := d.Stores()
	assert.Equal(t, len(d.Chats), chats.Len())
	assert.Equal(t, len(d.Statuses), statuses.Len())
}

func TestDefault_HasStickerAndReactions(t *testing.T) {
	d := Default()
	var sticker, reactions bool
	for _, c := range d.Chats {
		for _, m := range c.Messages {
			sticker = sticker || m.IsSticker
			reactions = reactions || len(m.Reactions) > 0
		}
	}
	assert.True(t, sticker)
	assert.True(t, reactions)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "chats: ["},
		{"bad status color", `
statuses:
  - {id: s, author_id: a, author_name: A, content: hi, created_at: now, background: blue, text: "#FFFFFF"}
`},
		{"duplicate chat", `
chats:
  - {id: a, name: A}
  - {id: a, name: B}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}
