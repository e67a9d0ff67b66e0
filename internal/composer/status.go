// Package composer holds the input logic behind the create-status dialog and
// the thread's message box, independent of how they are drawn.
package composer

import (
	"strings"

	"github.com/rivo/uniseg"
	perrors "github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/moderation"
	"github.com/zhubert/murmur/internal/status"
)

// PublishFunc receives a finished status. The caller owns creating the
// Status record (id, author, label) from these values.
type PublishFunc func(content, background, text string)

// StatusComposer collects the content and colors of a new status.
type StatusComposer struct {
	content   string
	swatch    int
	onPublish PublishFunc
	filter    *moderation.Filter
}

// NewStatusComposer returns a composer in its default state. filter may be
// nil.
func NewStatusComposer(onPublish PublishFunc, filter *moderation.Filter) *StatusComposer {
	return &StatusComposer{
		swatch:    status.DefaultSwatch,
		onPublish: onPublish,
		filter:    filter,
	}
}

// Truncate cuts s to at most limit grapheme clusters.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	g := uniseg.NewGraphemes(s)
	n, end := 0, 0
	for g.Next() {
		if n == limit {
			return s[:end]
		}
		_, end = g.Positions()
		n++
	}
	return s
}

// SetContent replaces the draft, truncated to status.MaxContentLength.
func (c *StatusComposer) SetContent(s string) {
	c.content = Truncate(s, status.MaxContentLength)
}

// Content returns the draft as typed.
func (c *StatusComposer) Content() string { return c.content }

// Remaining returns how many characters can still be typed.
func (c *StatusComposer) Remaining() int {
	return status.MaxContentLength - uniseg.GraphemeClusterCount(c.content)
}

// Swatch returns the selected palette index.
func (c *StatusComposer) Swatch() int { return c.swatch }

// Colors returns the selected background and text colors.
func (c *StatusComposer) Colors() (background, text string) {
	sw := status.Palette[c.swatch]
	return sw.Background, sw.Text
}

// SelectSwatch picks palette entry i. Out-of-range indexes are ignored.
func (c *StatusComposer) SelectSwatch(i int) {
	if i < 0 || i >= len(status.Palette) {
		return
	}
	c.swatch = i
}

// SelectBackground picks the palette entry whose background is bg.
// It reports false when bg is not in the palette.
func (c *StatusComposer) SelectBackground(bg string) bool {
	_, i, ok := status.SwatchFor(bg)
	if ok {
		c.swatch = i
	}
	return ok
}

// CycleSwatch moves the selection by delta, wrapping around the palette.
func (c *StatusComposer) CycleSwatch(delta int) {
	n := len(status.Palette)
	c.swatch = ((c.swatch+delta)%n + n) % n
}

// CanPublish reports whether the trimmed draft is non-empty.
func (c *StatusComposer) CanPublish() bool {
	return strings.TrimSpace(c.content) != ""
}

// Publish hands the trimmed draft and the selected colors to the publish
// callback, then resets the composer. Whitespace-only drafts are rejected
// without calling back.
func (c *StatusComposer) Publish() error {
	if !c.CanPublish() {
		return perrors.EmptyContent("composer.Publish")
	}
	content := c.filter.Apply(strings.TrimSpace(c.content))
	bg, text := c.Colors()

	if c.onPublish != nil {
		c.onPublish(content, bg, text)
	}
	logger.WithComponent("composer").Debug("status published", "background", bg)
	c.Reset()
	return nil
}

// Reset restores the empty draft and default swatch.
func (c *StatusComposer) Reset() {
	c.content = ""
	c.swatch = status.DefaultSwatch
}
