package demo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "line1\nline2", Delay: 500 * time.Millisecond},
		{Content: "next", Delay: time.Second, Annotation: "Step two"},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 80, 24); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	var lines []string
	sc := bufio.NewScanner(&buf)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	// Header, frame, marker, frame
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Version != 2 || header.Width != 80 || header.Height != 24 {
		t.Errorf("unexpected header %+v", header)
	}

	var first []any
	if err := json.Unmarshal([]byte(lines[1]), &first); err != nil {
		t.Fatalf("first event: %v", err)
	}
	if first[0].(float64) != 0.5 || first[1] != "o" {
		t.Errorf("unexpected first event %v", first)
	}
	if first[2] != clearScreen+"line1\r\nline2" {
		t.Errorf("expected CRLF line endings, got %q", first[2])
	}

	var marker []any
	if err := json.Unmarshal([]byte(lines[2]), &marker); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if marker[0].(float64) != 1.5 || marker[1] != "m" || marker[2] != "Step two" {
		t.Errorf("unexpected marker %v", marker)
	}
}

func TestGenerateASCIICast_NoFrames(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, nil, 80, 24); err != nil {
		t.Fatal(err)
	}
	if bytes.Count(buf.Bytes(), []byte("\n")) != 1 {
		t.Errorf("expected only the header, got %q", buf.String())
	}
}
