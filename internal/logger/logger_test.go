package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_RecordsPath(t *testing.T) {
	logPath := setupTestLogger(t)

	if got := Path(); got != logPath {
		t.Errorf("Path() = %q, want %q", got, logPath)
	}
	if !strings.Contains(readLog(t, logPath), "Logger initialized") {
		t.Error("expected init line in log file")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestDebug_RespectsLevel(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-%d", 1)
	if strings.Contains(readLog(t, logPath), "hidden-1") {
		t.Error("debug message should be filtered at info level")
	}

	SetDebug(true)
	Debug("visible-%d", 2)
	if !strings.Contains(readLog(t, logPath), "visible-2") {
		t.Error("debug message should be written once debug is enabled")
	}
}

func TestLevels_Formatting(t *testing.T) {
	logPath := setupTestLogger(t)

	Info("info %s", "alpha")
	Warn("warn %d", 7)
	Error("error %.1f", 2.5)

	content := readLog(t, logPath)
	for _, want := range []string{"info alpha", "warn 7", "error 2.5", "level=WARN", "level=ERROR"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestWithComponent(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("playback").Info("session opened", "index", 3)

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=playback") {
		t.Error("expected component attribute")
	}
	if !strings.Contains(content, "index=3") {
		t.Error("expected structured attribute")
	}
}

func TestWithChat(t *testing.T) {
	logPath := setupTestLogger(t)

	WithChat("chat-42").Info("message appended")

	if !strings.Contains(readLog(t, logPath), "chatID=chat-42") {
		t.Error("expected chatID attribute")
	}
}

func TestClose_StopsWriting(t *testing.T) {
	logPath := setupTestLogger(t)

	Close()
	Info("after-close")

	if strings.Contains(readLog(t, logPath), "after-close") {
		t.Error("nothing should be written after Close")
	}
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Info("concurrent %d-%d", n, j)
			}
		}(i)
	}
	wg.Wait()
}
