package modals

import (
	"os"
	"testing"

	"github.com/zhubert/murmur/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	// Initialize modal constants for tests
	ModalWidth = 60
	ModalInputWidth = 50

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
