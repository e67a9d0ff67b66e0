package emoji

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Tab selects what the picker is browsing.
type Tab int

const (
	TabEmoji Tab = iota
	TabStickers
)

func (t Tab) String() string {
	if t == TabStickers {
		return "Stickers"
	}
	return "Emoji"
}

// CellWidth is the display width every glyph is padded to in the grid.
const CellWidth = 2

// DefaultColumns is the grid width used when none is given.
const DefaultColumns = 8

// Picker is the browse state of the emoji/sticker popover. It knows nothing
// about keys or rendering; the UI drives it.
type Picker struct {
	catalog *Catalog
	columns int

	open     bool
	tab      Tab
	category int
	cursor   int
	query    string
}

// NewPicker returns a closed picker over catalog.
func NewPicker(catalog *Catalog, columns int) *Picker {
	if columns <= 0 {
		columns = DefaultColumns
	}
	return &Picker{catalog: catalog, columns: columns}
}

// Catalog returns the catalog being browsed.
func (p *Picker) Catalog() *Catalog { return p.catalog }

// Open shows the picker with a fresh cursor and query.
func (p *Picker) Open() {
	p.open = true
	p.cursor = 0
	p.query = ""
}

// Close hides the picker.
func (p *Picker) Close() { p.open = false }

// Toggle flips visibility.
func (p *Picker) Toggle() {
	if p.open {
		p.Close()
	} else {
		p.Open()
	}
}

// IsOpen reports whether the picker is visible.
func (p *Picker) IsOpen() bool { return p.open }

// Tab returns the active tab.
func (p *Picker) Tab() Tab { return p.tab }

// SetTab switches tabs and resets the cursor.
func (p *Picker) SetTab(t Tab) {
	if p.tab != t {
		p.tab = t
		p.cursor = 0
	}
}

// SwitchTab toggles between emoji and stickers.
func (p *Picker) SwitchTab() {
	if p.tab == TabEmoji {
		p.SetTab(TabStickers)
	} else {
		p.SetTab(TabEmoji)
	}
}

// Category returns the index of the emoji category shown.
func (p *Picker) Category() int { return p.category }

// CycleCategory moves to the next or previous emoji category, wrapping.
func (p *Picker) CycleCategory(delta int) {
	n := len(p.catalog.Categories)
	if n == 0 {
		return
	}
	p.category = ((p.category+delta)%n + n) % n
	p.cursor = 0
}

// Query returns the search filter.
func (p *Picker) Query() string { return p.query }

// SetQuery replaces the search filter and resets the cursor.
func (p *Picker) SetQuery(q string) {
	p.query = q
	p.cursor = 0
}

// Items returns the glyphs currently on the grid. A non-empty query on the
// emoji tab searches every category.
func (p *Picker) Items() []Emoji {
	if p.tab == TabStickers {
		return p.catalog.SearchStickers(p.query)
	}
	if strings.TrimSpace(p.query) != "" {
		return p.catalog.Search(p.query)
	}
	if len(p.catalog.Categories) == 0 {
		return nil
	}
	return p.catalog.Categories[p.category].Emojis
}

// Columns returns the grid width in cells.
func (p *Picker) Columns() int { return p.columns }

// Cursor returns the index of the highlighted item.
func (p *Picker) Cursor() int { return p.cursor }

// Move shifts the cursor by dx columns and dy rows, clamped to the grid.
func (p *Picker) Move(dx, dy int) {
	n := len(p.Items())
	if n == 0 {
		p.cursor = 0
		return
	}
	next := p.cursor + dx + dy*p.columns
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	p.cursor = next
}

// Selected returns the highlighted item.
func (p *Picker) Selected() (Emoji, bool) {
	items := p.Items()
	if p.cursor < 0 || p.cursor >= len(items) {
		return Emoji{}, false
	}
	return items[p.cursor], true
}

// Rows splits the current items into grid rows.
func (p *Picker) Rows() [][]Emoji {
	items := p.Items()
	var rows [][]Emoji
	for start := 0; start < len(items); start += p.columns {
		end := min(start+p.columns, len(items))
		rows = append(rows, items[start:end])
	}
	return rows
}

// Cell pads glyph to CellWidth terminal columns so the grid lines up.
func Cell(glyph string) string {
	if runewidth.StringWidth(glyph) >= CellWidth {
		return glyph
	}
	return runewidth.FillRight(glyph, CellWidth)
}
