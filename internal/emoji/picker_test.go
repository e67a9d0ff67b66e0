package emoji

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.Categories)
	require.NotEmpty(t, c.Stickers)

	for _, cat := range c.Categories {
		assert.NotEmpty(t, cat.Name)
		assert.NotEmpty(t, cat.Emojis, "category %s", cat.Name)
	}

	glyphs := make([]string, 0, len(c.Stickers))
	for _, s := range c.Stickers {
		glyphs = append(glyphs, s.Glyph)
	}
	assert.Contains(t, glyphs, "🎉")
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("categories: ["))
	assert.Error(t, err)

	_, err = Parse([]byte("stickers: []"))
	assert.Error(t, err)
}

func TestCatalog_Search(t *testing.T) {
	c := Default()

	tests := []struct {
		query string
		want  string
	}{
		{"tada", "🎉"},
		{"ROCKET", "🚀"},
		{"laugh", "😂"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Search(tt.query)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got[0].Glyph)
		})
	}

	assert.Empty(t, c.Search("nothing-like-this"))
	assert.Len(t, c.Search(""), len(c.AllEmojis()))
	assert.Len(t, c.SearchStickers("  "), len(c.Stickers))
	assert.Equal(t, "🦊", c.SearchStickers("fox")[0].Glyph)
}

func TestPicker_OpenCloseToggle(t *testing.T) {
	p := NewPicker(Default(), 0)
	assert.False(t, p.IsOpen())
	assert.Equal(t, DefaultColumns, p.Columns())

	p.SetQuery("heart")
	p.Open()
	assert.True(t, p.IsOpen())
	assert.Empty(t, p.Query())

	p.Toggle()
	assert.False(t, p.IsOpen())
	p.Toggle()
	assert.True(t, p.IsOpen())
	p.Close()
	assert.False(t, p.IsOpen())
}

func TestPicker_Tabs(t *testing.T) {
	c := Default()
	p := NewPicker(c, 4)
	p.Open()

	assert.Equal(t, TabEmoji, p.Tab())
	assert.Equal(t, c.Categories[0].Emojis, p.Items())

	p.Move(2, 0)
	p.SwitchTab()
	assert.Equal(t, TabStickers, p.Tab())
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, c.Stickers, p.Items())
	assert.Equal(t, "Stickers", p.Tab().String())

	p.SwitchTab()
	assert.Equal(t, TabEmoji, p.Tab())
}

func TestPicker_CycleCategoryWraps(t *testing.T) {
	c := Default()
	p := NewPicker(c, 4)

	p.CycleCategory(-1)
	assert.Equal(t, len(c.Categories)-1, p.Category())
	p.CycleCategory(1)
	assert.Equal(t, 0, p.Category())
}

func TestPicker_MoveClamps(t *testing.T) {
	p := NewPicker(Default(), 4)
	n := len(p.Items())

	p.Move(-1, 0)
	assert.Equal(t, 0, p.Cursor())

	p.Move(1, 1)
	assert.Equal(t, 5, p.Cursor())

	p.Move(0, 100)
	assert.Equal(t, n-1, p.Cursor())

	sel, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, p.Items()[n-1], sel)
}

func TestPicker_SearchAcrossCategories(t *testing.T) {
	p := NewPicker(Default(), 4)
	p.SetQuery("love")

	items := p.Items()
	require.NotEmpty(t, items)
	for _, e := range items {
		assert.True(t, e.Matches("love"), e.Name)
	}

	p.SetQuery("zzzz")
	_, ok := p.Selected()
	assert.False(t, ok)
}

func TestPicker_Rows(t *testing.T) {
	p := NewPicker(Default(), 5)
	p.SetTab(TabStickers)

	rows := p.Rows()
	total := 0
	for i, row := range rows {
		assert.LessOrEqual(t, len(row), 5, "row %d", i)
		total += len(row)
	}
	assert.Equal(t, len(p.Items()), total)
}

func TestCell_PadsToWidth(t *testing.T) {
	for _, g := range []string{"🎉", "❤️", "a", ""} {
		assert.GreaterOrEqual(t, runewidth.StringWidth(Cell(g)), CellWidth, "glyph %q", g)
	}
}
