// Package clipboard provides text reading and writing on the system clipboard.
package clipboard

import (
	"sync"

	perrors "github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
	"golang.design/x/clipboard"
)

// Clipboard moves text to and from a clipboard.
type Clipboard interface {
	WriteText(text string) error
	ReadText() (string, error)
}

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
			initErr = perrors.E(perrors.Op("clipboard.Init"), perrors.KindClipboard, err)
			return
		}
		logger.WithComponent("clipboard").Debug("initialized")
	})
	return initErr
}

// System is the OS clipboard.
type System struct{}

// WriteText places text on the clipboard.
func (System) WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// ReadText reads text from the clipboard. An empty clipboard yields "".
func (System) ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	textBytes := clipboard.Read(clipboard.FmtText)
	if textBytes == nil {
		return "", nil
	}
	return string(textBytes), nil
}

// Memory is an in-process clipboard used when the system one is
// unavailable (headless sessions, tests).
type Memory struct {
	mu   sync.Mutex
	text string
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// ReadText returns the stored text.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Detect returns the system clipboard when it can be initialized and an
// in-memory one otherwise.
func Detect() Clipboard {
	if err := Init(); err != nil {
		return &Memory{}
	}
	return System{}
}
