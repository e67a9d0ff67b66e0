package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/murmur/internal/emoji"
)

func testCatalog() *emoji.Catalog {
	return &emoji.Catalog{
		Categories: []emoji.Category{
			{Name: "Smileys", Icon: "😀", Emojis: []emoji.Emoji{
				{Glyph: "😀", Name: "grinning", Keywords: []string{"happy"}},
				{Glyph: "😂", Name: "joy", Keywords: []string{"laugh"}},
				{Glyph: "😍", Name: "heart eyes", Keywords: []string{"love"}},
			}},
			{Name: "Animals", Icon: "🐶", Emojis: []emoji.Emoji{
				{Glyph: "🐶", Name: "dog", Keywords: []string{"puppy"}},
			}},
		},
		Stickers: []emoji.Emoji{{Glyph: "🐱", Name: "cat", Keywords: []string{"kitty"}}},
	}
}

func TestPickerOverlay_ClosedRendersNothing(t *testing.T) {
	o := NewPickerOverlay(emoji.NewPicker(testCatalog(), 4))
	if o.IsOpen() || o.View() != "" {
		t.Error("closed picker should render nothing")
	}
}

func TestPickerOverlay_View(t *testing.T) {
	o := NewPickerOverlay(emoji.NewPicker(testCatalog(), 4))
	o.Open()

	view := stripANSI(o.View())
	for _, want := range []string{"Emoji", "Stickers", "Smileys", "😂", "grinning"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in picker view", want)
		}
	}
}

func TestPickerOverlay_StickersTab(t *testing.T) {
	o := NewPickerOverlay(emoji.NewPicker(testCatalog(), 4))
	o.Open()
	o.Picker().SwitchTab()

	view := stripANSI(o.View())
	if !strings.Contains(view, "🐱") {
		t.Error("expected sticker on stickers tab")
	}
	if strings.Contains(view, "Smileys") {
		t.Error("category name belongs to the emoji tab only")
	}
}

func TestPickerOverlay_Search(t *testing.T) {
	o := NewPickerOverlay(emoji.NewPicker(testCatalog(), 4))
	o.Open()

	// Keys do nothing until search is started
	o.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if o.Picker().Query() != "" {
		t.Fatal("keys should not reach the search field before StartSearch")
	}

	o.StartSearch()
	for _, r := range "dog" {
		o.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if o.Picker().Query() != "dog" {
		t.Errorf("expected query 'dog', got %q", o.Picker().Query())
	}
	if items := o.Picker().Items(); len(items) != 1 || items[0].Glyph != "🐶" {
		t.Errorf("expected search to find the dog, got %v", items)
	}

	o.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if o.IsSearching() {
		t.Error("enter should leave the search field")
	}
	if o.Picker().Query() != "dog" {
		t.Error("leaving search keeps the query")
	}
}

func TestPickerOverlay_CloseStopsSearch(t *testing.T) {
	o := NewPickerOverlay(emoji.NewPicker(testCatalog(), 4))
	o.Open()
	o.StartSearch()
	o.Close()

	if o.IsOpen() || o.IsSearching() {
		t.Error("Close should hide the picker and stop searching")
	}
}

func TestPickerOverlay_NothingFound(t *testing.T) {
	o := NewPickerOverlay(emoji.NewPicker(testCatalog(), 4))
	o.Open()
	o.Picker().SetQuery("zzz")

	if !strings.Contains(stripANSI(o.View()), "Nothing found") {
		t.Error("expected empty search message")
	}
}

func TestOverlay(t *testing.T) {
	base := strings.Repeat(".....\n", 4) + "....."
	out := Overlay(base, "XX\nXX", 1, 1, 5, 5)

	lines := strings.Split(stripANSI(out), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], ".....") {
		t.Errorf("row 0 should be untouched, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], ".XX..") || !strings.HasPrefix(lines[2], ".XX..") {
		t.Errorf("overlay should be drawn at (1,1), got %q / %q", lines[1], lines[2])
	}
	if w := ansi.StringWidth(lines[0]); w != 5 {
		t.Errorf("expected width 5, got %d", w)
	}
}

func TestOverlay_EmptyOverlay(t *testing.T) {
	if Overlay("base", "", 0, 0, 10, 1) != "base" {
		t.Error("empty overlay should return the base unchanged")
	}
}
