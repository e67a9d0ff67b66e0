// Package emoji provides the bundled emoji/sticker catalog and the state of
// the picker that browses it.
package emoji

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Emoji is a single pickable glyph.
type Emoji struct {
	Glyph    string   `yaml:"glyph"`
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Matches reports whether q appears in the name or any keyword.
// q must already be lowercase.
func (e Emoji) Matches(q string) bool {
	if strings.Contains(strings.ToLower(e.Name), q) {
		return true
	}
	return lo.ContainsBy(e.Keywords, func(k string) bool {
		return strings.Contains(strings.ToLower(k), q)
	})
}

// Category groups emoji under a tab icon.
type Category struct {
	Name   string  `yaml:"name"`
	Icon   string  `yaml:"icon"`
	Emojis []Emoji `yaml:"emojis"`
}

// Catalog is everything the picker can offer.
type Catalog struct {
	Categories []Category `yaml:"categories"`
	Stickers   []Emoji    `yaml:"stickers"`
}

// Parse decodes a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse emoji catalog: %w", err)
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("parse emoji catalog: no categories")
	}
	return &c, nil
}

// Default returns the bundled catalog.
func Default() *Catalog {
	c, err := Parse(catalogYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// AllEmojis flattens every category.
func (c *Catalog) AllEmojis() []Emoji {
	return lo.FlatMap(c.Categories, func(cat Category, _ int) []Emoji { return cat.Emojis })
}

// Search returns the emoji matching q across every category.
func (c *Catalog) Search(q string) []Emoji {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return c.AllEmojis()
	}
	return lo.Filter(c.AllEmojis(), func(e Emoji, _ int) bool { return e.Matches(q) })
}

// SearchStickers returns the stickers matching q.
func (c *Catalog) SearchStickers(q string) []Emoji {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return c.Stickers
	}
	return lo.Filter(c.Stickers, func(e Emoji, _ int) bool { return e.Matches(q) })
}
