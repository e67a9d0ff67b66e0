package status

import (
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	perrors "github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

func sample(id string) Status {
	return Status{
		ID:              id,
		AuthorID:        "u-" + id,
		AuthorName:      "Author " + id,
		Content:         "content " + id,
		CreatedAtLabel:  "1 hour ago",
		BackgroundColor: "#8B5CF6",
		TextColor:       "#FFFFFF",
	}
}

func TestStore_PrependKeepsNewestFirst(t *testing.T) {
	req := require.New(t)
	store := NewStore([]Status{sample("a"), sample("b")})

	req.NoError(store.Prepend(sample("c")))

	all := store.All()
	req.Len(all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestStore_AllReturnsSnapshot(t *testing.T) {
	store := NewStore([]Status{sample("a")})

	snap := store.All()
	snap[0].Content = "mutated"

	got, err := store.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "content a", got.Content)
}

func TestStore_GetOutOfRange(t *testing.T) {
	store := NewStore(nil)

	_, err := store.Get(0)
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.KindInvalid))

	_, err = store.Get(-1)
	assert.Error(t, err)
}

func TestStore_PublishUsesCurrentUserDefaults(t *testing.T) {
	req := require.New(t)
	store := NewStore([]Status{sample("a")})

	st, err := store.Publish("Hello", "#0EA5E9", "#FFFFFF", "")
	req.NoError(err)

	req.NotEmpty(st.ID)
	assert.Equal(t, CurrentUserID, st.AuthorID)
	assert.Equal(t, CurrentUserName, st.AuthorName)
	assert.Equal(t, JustNowLabel, st.CreatedAtLabel)
	assert.Equal(t, "#0EA5E9", st.BackgroundColor)
	assert.Equal(t, "#FFFFFF", st.TextColor)
	assert.True(t, st.IsMine())

	first, err := store.Get(0)
	req.NoError(err)
	assert.Equal(t, st, first)
	assert.Equal(t, 2, store.Len())
}

func TestStore_PublishOverridesAuthorName(t *testing.T) {
	store := NewStore(nil)

	st, err := store.Publish("Hi", "#10B981", "#FFFFFF", "Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", st.AuthorName)
	assert.Equal(t, CurrentUserID, st.AuthorID)
}

func TestStore_PublishGeneratesUniqueIDs(t *testing.T) {
	store := NewStore(nil)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		st, err := store.Publish("x", "#10B981", "#FFFFFF", "")
		require.NoError(t, err)
		assert.False(t, seen[st.ID], "duplicate id %s", st.ID)
		seen[st.ID] = true
	}
}

func TestStore_PrependRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Status)
	}{
		{"empty content", func(s *Status) { s.Content = "" }},
		{"content too long", func(s *Status) { s.Content = strings.Repeat("x", MaxContentLength+1) }},
		{"bad background", func(s *Status) { s.BackgroundColor = "green" }},
		{"bad text color", func(s *Status) { s.TextColor = "#GGGGGG" }},
		{"missing id", func(s *Status) { s.ID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(nil)
			st := sample("z")
			tt.mutate(&st)

			err := store.Prepend(st)
			require.Error(t, err)
			assert.True(t, perrors.Is(err, perrors.KindInvalid))
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestStore_ContentLimitCountsGraphemes(t *testing.T) {
	st := sample("limit")
	st.Content = strings.Repeat("é", MaxContentLength)
	assert.NoError(t, st.Validate())

	// Each family emoji is several runes but one character.
	st.Content = strings.Repeat("👩‍👩‍👧", MaxContentLength)
	assert.NoError(t, st.Validate())

	st.Content += "x"
	assert.Error(t, st.Validate())
}

func TestStore_ConcurrentPublish(t *testing.T) {
	store := NewStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_, _ = store.Publish("x", "#10B981", "#FFFFFF", "")
				_ = store.All()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 80, store.Len())
}

func TestSwatchFor(t *testing.T) {
	sw, idx, ok := SwatchFor("#0EA5E9")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "#FFFFFF", sw.Text)

	_, idx, ok = SwatchFor("#000000")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestPalette_AllSwatchesValid(t *testing.T) {
	for i, sw := range Palette {
		st := sample("p")
		st.BackgroundColor = sw.Background
		st.TextColor = sw.Text
		assert.NoError(t, st.Validate(), "palette entry %d (%s)", i, sw.Name)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Sarah Johnson", "SJ"},
		{"current user", "CU"},
		{"mike", "M"},
		{"  spaced   out name ", "SO"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.in))
		})
	}
}
