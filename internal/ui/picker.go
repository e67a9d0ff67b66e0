package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/zhubert/murmur/internal/emoji"
	"github.com/zhubert/murmur/internal/keys"
)

// PickerOverlay renders an emoji.Picker as a popover and owns its search
// field. The picker itself holds the browse state.
type PickerOverlay struct {
	picker    *emoji.Picker
	search    textinput.Model
	searching bool
}

// NewPickerOverlay wraps p
func NewPickerOverlay(p *emoji.Picker) *PickerOverlay {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 32
	ti.Prompt = ""
	ti.SetWidth(p.Columns()*(emoji.CellWidth+1) - 2)

	return &PickerOverlay{picker: p, search: ti}
}

// Picker returns the wrapped picker
func (o *PickerOverlay) Picker() *emoji.Picker {
	return o.picker
}

// Open shows the picker with an empty search
func (o *PickerOverlay) Open() {
	o.picker.Open()
	o.StopSearch()
	o.search.SetValue("")
}

// Close hides the picker
func (o *PickerOverlay) Close() {
	o.StopSearch()
	o.picker.Close()
}

// IsOpen reports whether the picker is visible
func (o *PickerOverlay) IsOpen() bool {
	return o.picker.IsOpen()
}

// StartSearch focuses the search field
func (o *PickerOverlay) StartSearch() tea.Cmd {
	o.searching = true
	return o.search.Focus()
}

// StopSearch leaves the search field, keeping the query
func (o *PickerOverlay) StopSearch() {
	o.searching = false
	o.search.Blur()
}

// IsSearching reports whether keys go to the search field
func (o *PickerOverlay) IsSearching() bool {
	return o.searching
}

// Update forwards keys to the search field while searching
func (o *PickerOverlay) Update(msg tea.Msg) (*PickerOverlay, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !o.searching {
		return o, nil
	}
	switch keyMsg.String() {
	case keys.Enter, keys.Escape:
		o.StopSearch()
		return o, nil
	}
	var cmd tea.Cmd
	o.search, cmd = o.search.Update(msg)
	if o.search.Value() != o.picker.Query() {
		o.picker.SetQuery(o.search.Value())
	}
	return o, cmd
}

// renderTabs renders the Emoji/Stickers switch and, on the emoji tab, the
// category icons.
func (o *PickerOverlay) renderTabs() string {
	var tabs []string
	for _, t := range []emoji.Tab{emoji.TabEmoji, emoji.TabStickers} {
		if t == o.picker.Tab() {
			tabs = append(tabs, KindTabActiveStyle.Render(t.String()))
		} else {
			tabs = append(tabs, KindTabStyle.Render(t.String()))
		}
	}
	line := strings.Join(tabs, "")

	if o.picker.Tab() != emoji.TabEmoji || o.picker.Query() != "" {
		return line
	}

	var icons []string
	for i, c := range o.picker.Catalog().Categories {
		if i == o.picker.Category() {
			icons = append(icons, PickerCursorStyle.Render(c.Icon))
		} else {
			icons = append(icons, c.Icon)
		}
	}
	name := o.picker.Catalog().Categories[o.picker.Category()].Name
	return line + "\n" + strings.Join(icons, " ") + "\n" + ListPreviewStyle.Render(name)
}

// renderGrid renders at most PickerRows rows, scrolled to the cursor.
func (o *PickerOverlay) renderGrid() string {
	rows := o.picker.Rows()
	if len(rows) == 0 {
		return EmptyStateStyle.Render("Nothing found")
	}

	cursorRow := o.picker.Cursor() / o.picker.Columns()
	start := 0
	if cursorRow >= PickerRows {
		start = cursorRow - PickerRows + 1
	}
	end := min(start+PickerRows, len(rows))

	lines := make([]string, 0, end-start)
	for r := start; r < end; r++ {
		cells := make([]string, len(rows[r]))
		for c, e := range rows[r] {
			cell := emoji.Cell(e.Glyph)
			if r*o.picker.Columns()+c == o.picker.Cursor() {
				cell = PickerCursorStyle.Render(cell)
			}
			cells[c] = cell
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// View renders the popover, or "" when closed
func (o *PickerOverlay) View() string {
	if !o.picker.IsOpen() {
		return ""
	}

	searchLine := ListPreviewStyle.Render("/ search")
	if o.searching || o.search.Value() != "" {
		searchLine = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render("/") + " " + o.search.View()
	}

	var selected string
	if e, ok := o.picker.Selected(); ok {
		selected = truncateLine(e.Glyph+" "+e.Name, o.picker.Columns()*(emoji.CellWidth+1))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		o.renderTabs(),
		searchLine,
		o.renderGrid(),
		BubbleMetaStyle.Render(selected),
	)
	return PickerStyle.Render(content)
}

// Overlay draws overlay on top of base with its top-left corner at (x, y),
// leaving the rest of base visible. The result is width x height cells.
func Overlay(base, overlay string, x, y, width, height int) string {
	if overlay == "" || width <= 0 || height <= 0 {
		return base
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)

	ow, oh := lipgloss.Width(overlay), lipgloss.Height(overlay)
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	uv.NewStyledString(overlay).Draw(scr, uv.Rect(x, y, ow, oh))

	return scr.Render()
}
