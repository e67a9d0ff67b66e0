package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/murmur/internal/playback"
)

// segmentGap separates progress segments
const segmentGap = 1

// StatusViewer renders a playback session full screen: one progress
// segment per status, the author, and the content on the status colors.
type StatusViewer struct {
	width   int
	height  int
	session *playback.Session
}

// NewStatusViewer creates a viewer with no session
func NewStatusViewer() *StatusViewer {
	return &StatusViewer{}
}

// SetSize sets the viewer dimensions
func (v *StatusViewer) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetSession attaches s; nil detaches
func (v *StatusViewer) SetSession(s *playback.Session) {
	v.session = s
}

// Session returns the attached session, or nil
func (v *StatusViewer) Session() *playback.Session {
	return v.session
}

// IsOpen reports whether a live session is attached
func (v *StatusViewer) IsOpen() bool {
	return v.session != nil && !v.session.Closed()
}

// segmentWidths splits width into n segments separated by segmentGap,
// spreading the remainder over the first segments.
func segmentWidths(width, n int) []int {
	if n <= 0 {
		return nil
	}
	avail := width - segmentGap*(n-1)
	if avail < n {
		avail = n
	}
	widths := make([]int, n)
	base, extra := avail/n, avail%n
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}

// renderProgress renders the segmented bar. Segments before the current
// status are full, the current one fills with progress, later ones are
// empty.
func (v *StatusViewer) renderProgress(width int, fg, track string) string {
	s := v.session
	widths := segmentWidths(width, s.Len())
	full := lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color(track))

	parts := make([]string, len(widths))
	for i, w := range widths {
		filled := 0
		switch {
		case i < s.Index():
			filled = w
		case i == s.Index():
			filled = int(float64(w) * s.Progress() / 100)
		}
		if filled > w {
			filled = w
		}
		parts[i] = full.Render(strings.Repeat("━", filled)) + empty.Render(strings.Repeat("━", w-filled))
	}
	return strings.Join(parts, strings.Repeat(" ", segmentGap))
}

// View renders the viewer, or "" without a live session
func (v *StatusViewer) View() string {
	if !v.IsOpen() {
		return ""
	}

	st := v.session.Current()
	bg := lipgloss.Color(st.BackgroundColor)
	fg := lipgloss.Color(st.TextColor)
	base := lipgloss.NewStyle().Background(bg).Foreground(fg)

	innerWidth := v.width - 4
	if innerWidth < 1 {
		innerWidth = 1
	}

	progress := v.renderProgress(innerWidth, st.TextColor, CurrentTheme().TextMuted)

	avatar := base.Bold(true).Reverse(true).Padding(0, 1).Render(st.Initials())
	author := base.Bold(true).Render(st.AuthorName)
	when := base.Faint(true).Render(st.CreatedAtLabel)
	byline := avatar + base.Render(" ") + author + base.Render("  ") + when
	if v.session.Paused() {
		byline += base.Render("  ") + base.Bold(true).Render("❚❚ paused")
	}
	byline = truncateLine(byline, innerWidth)

	top := progress + "\n\n" + byline
	bodyHeight := v.height - lipgloss.Height(top) - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	textWidth := innerWidth * 3 / 4
	if textWidth < 10 {
		textWidth = innerWidth
	}
	text := base.Bold(true).Align(lipgloss.Center).Render(ansi.Wrap(st.Content, textWidth, ""))
	body := lipgloss.Place(innerWidth, bodyHeight, lipgloss.Center, lipgloss.Center, text,
		lipgloss.WithWhitespaceStyle(base))

	return base.
		Padding(1, 2).
		Width(v.width).
		Height(v.height).
		Render(top + "\n" + body)
}
