package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/murmur/internal/playback"
)

func openTestSession(t *testing.T, start int) *playback.Session {
	t.Helper()
	s, err := playback.Open(testStatuses(), start, playback.DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

func TestStatusViewer_ClosedRendersNothing(t *testing.T) {
	v := NewStatusViewer()
	v.SetSize(80, 24)

	if v.IsOpen() {
		t.Error("viewer without a session should not be open")
	}
	if v.View() != "" {
		t.Error("viewer without a session should render nothing")
	}
}

func TestStatusViewer_View(t *testing.T) {
	v := NewStatusViewer()
	v.SetSize(80, 24)
	v.SetSession(openTestSession(t, 1))

	view := stripANSI(v.View())
	for _, want := range []string{"Bob", "2h", "yo"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in viewer", want)
		}
	}
	if strings.Contains(view, "paused") {
		t.Error("a playing session should not show the paused marker")
	}
}

func TestStatusViewer_Paused(t *testing.T) {
	s := openTestSession(t, 0)
	s.Pause()

	v := NewStatusViewer()
	v.SetSize(80, 24)
	v.SetSession(s)

	if !strings.Contains(stripANSI(v.View()), "paused") {
		t.Error("expected paused marker")
	}
}

func TestStatusViewer_AfterClose(t *testing.T) {
	s := openTestSession(t, 0)
	v := NewStatusViewer()
	v.SetSession(s)
	s.Close()

	if v.IsOpen() {
		t.Error("closed session should not count as open")
	}
	if v.View() != "" {
		t.Error("closed session should render nothing")
	}
}

func TestStatusViewer_ProgressSegments(t *testing.T) {
	v := NewStatusViewer()
	v.SetSession(openTestSession(t, 1))

	bar := stripANSI(v.renderProgress(21, "#FFFFFF", "#000000"))
	if w := ansi.StringWidth(bar); w != 21 {
		t.Errorf("expected bar width 21, got %d", w)
	}
	if strings.Count(bar, " ") != 1 {
		t.Errorf("expected one gap between two segments, got %q", bar)
	}
}

func TestSegmentWidths(t *testing.T) {
	tests := []struct {
		width, n int
		want     []int
	}{
		{11, 2, []int{5, 5}},
		{12, 2, []int{6, 5}},
		{10, 1, []int{10}},
		{3, 5, []int{1, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got := segmentWidths(tt.width, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("segmentWidths(%d, %d) = %v, want %v", tt.width, tt.n, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("segmentWidths(%d, %d) = %v, want %v", tt.width, tt.n, got, tt.want)
				break
			}
		}
	}
	if segmentWidths(10, 0) != nil {
		t.Error("no segments for an empty session")
	}
}
