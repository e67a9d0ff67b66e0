package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/status"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// =============================================================================
// Create status
// =============================================================================

func TestCreateStatus_PublishesDraft(t *testing.T) {
	cfg := testConfig(t)
	m := testModelWithSize(cfg, 120, 40)
	before := m.statuses.Len()

	m.draft.SetContent("Hello")
	m = sendKey(m, "s")
	if _, ok := m.modal.State.(*modals.CreateStatusState); !ok {
		t.Fatalf("expected create-status modal, got %T", m.modal.State)
	}
	m = sendKey(m, keys.Enter)

	if m.statuses.Len() != before+1 {
		t.Fatalf("expected %d statuses, got %d", before+1, m.statuses.Len())
	}
	st := m.statuses.All()[0]
	if st.Content != "Hello" {
		t.Errorf("expected newest status 'Hello', got %q", st.Content)
	}
	if st.BackgroundColor != status.Palette[status.DefaultSwatch].Background {
		t.Errorf("expected default background, got %q", st.BackgroundColor)
	}
	if st.AuthorName != cfg.GetUserName() {
		t.Errorf("expected author %q, got %q", cfg.GetUserName(), st.AuthorName)
	}
	if m.draft.Content() != "" {
		t.Errorf("expected draft reset, got %q", m.draft.Content())
	}
	if m.modal.IsVisible() {
		t.Error("expected modal closed after posting")
	}
	if !m.footer.HasFlash() {
		t.Error("expected a confirmation flash")
	}
}

func TestCreateStatus_UsesChosenSwatch(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)

	m.draft.SetContent("Colors")
	m.draft.SelectSwatch(2)
	m = sendKey(m, "s")
	m = sendKey(m, keys.Enter)

	if got := m.statuses.All()[0].BackgroundColor; got != status.Palette[2].Background {
		t.Errorf("expected swatch 2 background, got %q", got)
	}
}

func TestCreateStatus_EmptyDraftStaysOpen(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)
	before := m.statuses.Len()

	m.draft.SetContent("   ")
	m = sendKey(m, "s")
	m = sendKey(m, keys.Enter)

	if m.statuses.Len() != before {
		t.Error("whitespace-only status should not be posted")
	}
	if !m.modal.IsVisible() {
		t.Error("expected dialog to stay open")
	}
}

func TestCreateStatus_EscapeKeepsDraft(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)
	before := m.statuses.Len()

	m.draft.SetContent("Later")
	m = sendKey(m, "s")
	m = sendKey(m, keys.Escape)

	if m.modal.IsVisible() {
		t.Fatal("expected dialog closed")
	}
	if m.statuses.Len() != before {
		t.Error("esc should not post")
	}
	if m.draft.Content() != "Later" {
		t.Errorf("expected draft kept, got %q", m.draft.Content())
	}

	m = sendKey(m, "s")
	state, ok := m.modal.State.(*modals.CreateStatusState)
	if !ok {
		t.Fatalf("expected create-status modal, got %T", m.modal.State)
	}
	if state.Draft().Content() != "Later" {
		t.Errorf("expected reopened dialog to hold the draft, got %q", state.Draft().Content())
	}
}

func TestCreateStatus_BlockedWordsMasked(t *testing.T) {
	cfg := testConfig(t)
	cfg.BlockedWords = []string{"darn"}
	m := testModelWithSize(cfg, 120, 40)

	m.draft.SetContent("darn it")
	m = sendKey(m, "s")
	m = sendKey(m, keys.Enter)

	if got := m.statuses.All()[0].Content; got != "**** it" {
		t.Errorf("expected masked status, got %q", got)
	}
}

func TestCreateStatus_ShowsInRail(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)

	m.draft.SetContent("Fresh")
	m = sendKey(m, "s")
	m = sendKey(m, keys.Enter)

	// Rail tile 1 is the newest status.
	m = sendKey(m, "r")
	m = sendKey(m, keys.Right)
	m = sendKey(m, keys.Enter)
	if !m.viewer.IsOpen() {
		t.Fatal("expected viewer open")
	}
	if got := m.viewer.Session().Current().Content; got != "Fresh" {
		t.Errorf("expected the new status first, got %q", got)
	}
}

// =============================================================================
// Settings
// =============================================================================

func TestSettings_EnterSaves(t *testing.T) {
	resetTheme(t)
	cfg := testConfig(t)
	m := testModelWithSize(cfg, 120, 40)

	m = sendKey(m, "t")
	m = sendKey(m, keys.Enter)

	if m.modal.IsVisible() {
		t.Errorf("expected settings closed, error: %q", m.modal.GetError())
	}
	if _, err := os.Stat(cfg.Path()); err != nil {
		t.Errorf("expected config written: %v", err)
	}
}

func TestSettings_EscapeDiscards(t *testing.T) {
	cfg := testConfig(t)
	m := testModelWithSize(cfg, 120, 40)

	m = sendKey(m, "t")
	m = sendKey(m, keys.Escape)

	if m.modal.IsVisible() {
		t.Error("expected settings closed")
	}
	if _, err := os.Stat(cfg.Path()); !os.IsNotExist(err) {
		t.Error("esc should not write the config")
	}
}

func TestSettings_SaveErrorKeepsModalOpen(t *testing.T) {
	resetTheme(t)
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.SetFilePath(filepath.Join(blocker, "config.json"))
	m := testModelWithSize(cfg, 120, 40)

	m = sendKey(m, "t")
	m = sendKey(m, keys.Enter)

	if !m.modal.IsVisible() {
		t.Fatal("expected settings to stay open on save failure")
	}
	if !strings.HasPrefix(m.modal.GetError(), "Failed to save") {
		t.Errorf("expected save error, got %q", m.modal.GetError())
	}
}

// =============================================================================
// Welcome
// =============================================================================

func TestWelcome_ShownOnFirstRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.WelcomeShown = false
	m := testModelWithSize(cfg, 120, 40)

	m.Update(StartupModalMsg{})
	if _, ok := m.modal.State.(*modals.WelcomeState); !ok {
		t.Fatalf("expected welcome modal, got %T", m.modal.State)
	}

	m = sendKey(m, keys.Enter)

	if m.modal.IsVisible() {
		t.Error("expected welcome dismissed")
	}
	if !cfg.HasSeenWelcome() {
		t.Error("expected welcome marked as seen")
	}
	if _, err := os.Stat(cfg.Path()); err != nil {
		t.Errorf("expected config saved: %v", err)
	}
}

func TestWelcome_NotShownAgain(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)

	m.Update(StartupModalMsg{})

	if m.modal.IsVisible() {
		t.Error("welcome should only show once")
	}
}

func TestWelcome_SaveFailureFlashes(t *testing.T) {
	cfg := testConfig(t)
	cfg.WelcomeShown = false
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.SetFilePath(filepath.Join(blocker, "config.json"))
	m := testModelWithSize(cfg, 120, 40)

	m.Update(StartupModalMsg{})
	m = sendKey(m, keys.Escape)

	if m.modal.IsVisible() {
		t.Error("expected welcome dismissed even when saving fails")
	}
	if !m.footer.HasFlash() {
		t.Error("expected a warning flash")
	}
}
