package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWrapText(t *testing.T) {
	out := wrapText("the quick brown fox jumps over the lazy dog", 10)
	for _, line := range strings.Split(out, "\n") {
		if ansi.StringWidth(line) > 10 {
			t.Errorf("line %q wider than 10", line)
		}
	}
	if wrapText("unchanged", 0) != "unchanged" {
		t.Error("width 0 should leave text unchanged")
	}
}

func TestHasCodeBlock(t *testing.T) {
	if !hasCodeBlock("look:\n```go\nfmt.Println()\n```") {
		t.Error("expected code block to be detected")
	}
	if hasCodeBlock("no code here") {
		t.Error("plain text should not be a code block")
	}
}

func TestRenderMessageText_Plain(t *testing.T) {
	out := stripANSI(renderMessageText("hello there", 40))
	if out != "hello there" {
		t.Errorf("renderMessageText() = %q, want %q", out, "hello there")
	}
}

func TestRenderMessageText_CodeBlock(t *testing.T) {
	content := "before\n```go\nx := 1\n```\nafter"
	out := stripANSI(renderMessageText(content, 40))

	for _, want := range []string{"before", "x := 1", "after"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
	if strings.Contains(out, "```") {
		t.Error("fences should not be rendered")
	}
}

func TestRenderMessageText_UnterminatedFence(t *testing.T) {
	out := stripANSI(renderMessageText("```\nleft open", 40))
	if !strings.Contains(out, "left open") {
		t.Errorf("unterminated code should still render, got %q", out)
	}
}

func TestHighlightCode_UnknownLanguage(t *testing.T) {
	out := stripANSI(highlightCode("plain words", "not-a-language"))
	if !strings.Contains(out, "plain words") {
		t.Errorf("expected code text preserved, got %q", out)
	}
}

func TestTruncateLine(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 8, "this is…"},
		{"two\nlines", 20, "two lines"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateLine(tt.in, tt.width); got != tt.want {
			t.Errorf("truncateLine(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
