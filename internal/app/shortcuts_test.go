package app

import (
	"testing"

	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// =============================================================================
// ShortcutRegistry Tests
// =============================================================================

func TestShortcutRegistry_AllShortcutsHaveHandlers(t *testing.T) {
	for _, s := range ShortcutRegistry {
		if s.Handler == nil {
			t.Errorf("Shortcut %q has no handler", s.Key)
		}
		if s.Key == "" {
			t.Error("Shortcut has empty key")
		}
		if s.Description == "" {
			t.Errorf("Shortcut %q has no description", s.Key)
		}
		if s.Category == "" {
			t.Errorf("Shortcut %q has no category", s.Key)
		}
	}
}

func TestShortcutRegistry_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range ShortcutRegistry {
		if seen[s.Key] {
			t.Errorf("Duplicate shortcut key: %q", s.Key)
		}
		seen[s.Key] = true
	}
	if seen[helpShortcut.Key] {
		t.Error("Help shortcut key '?' duplicated in registry")
	}
}

func TestShortcutRegistry_ValidCategories(t *testing.T) {
	valid := make(map[string]bool)
	for _, c := range categoryOrder {
		valid[c] = true
	}
	for _, s := range append(ShortcutRegistry, DisplayOnlyShortcuts...) {
		if !valid[s.Category] {
			t.Errorf("Shortcut %q has invalid category: %q", displayKey(s), s.Category)
		}
	}
}

// =============================================================================
// ExecuteShortcut Tests
// =============================================================================

func TestExecuteShortcut_UnknownKey(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)

	if _, _, handled := m.ExecuteShortcut("x"); handled {
		t.Error("expected unknown key not to be handled")
	}
}

func TestExecuteShortcut_RequiresListGuard(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)
	m = openChatByKey(t, m, "anna")

	for _, key := range []string{"s", "r", "t", "/", "?"} {
		if _, _, handled := m.ExecuteShortcut(key); handled {
			t.Errorf("expected %q to be blocked while the thread is focused", key)
		}
	}
}

func TestExecuteShortcut_RequiresChatGuard(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)

	for _, key := range []string{keys.CtrlE, keys.CtrlY} {
		if _, _, handled := m.ExecuteShortcut(key); handled {
			t.Errorf("expected %q to need an open chat", key)
		}
	}
}

func TestExecuteShortcut_SearchModeBlocksShortcuts(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)
	m = sendKey(m, "/")

	if _, _, handled := m.ExecuteShortcut("s"); handled {
		t.Error("expected shortcuts disabled in search mode")
	}
}

func TestShortcut_StatusRail(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)

	m = sendKey(m, "r")
	if !m.list.IsRailFocused() {
		t.Fatal("expected rail focus after r")
	}
	if _, _, handled := m.ExecuteShortcut("r"); handled {
		t.Error("r should not apply while the rail is focused")
	}
}

func TestShortcut_Settings(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)

	m = sendKey(m, "t")

	if _, ok := m.modal.State.(*modals.SettingsState); !ok {
		t.Fatalf("expected settings modal, got %T", m.modal.State)
	}
}

// =============================================================================
// Help Tests
// =============================================================================

func TestGetApplicableHelpSections_NoChat(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)

	sections := m.getApplicableHelpSections(append(ShortcutRegistry, helpShortcut), DisplayOnlyShortcuts)

	for _, sec := range sections {
		if sec.Title == CategoryThread {
			t.Error("thread section should be hidden without an open chat")
		}
		for _, sc := range sec.Shortcuts {
			if sc.Key == "Tab" {
				t.Error("tab should be hidden without an open chat")
			}
		}
	}
	if len(sections) == 0 || sections[0].Title != CategoryNavigation {
		t.Errorf("expected Navigation first, got %+v", sections)
	}
}

func TestGetApplicableHelpSections_ThreadFocused(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)
	m = openChatByKey(t, m, "anna")

	sections := m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)

	found := false
	for _, sec := range sections {
		if sec.Title == CategoryThread {
			found = true
		}
		for _, sc := range sec.Shortcuts {
			if sc.Key == "s" || sc.Key == "q" {
				t.Errorf("list-only shortcut %q listed while typing", sc.Key)
			}
		}
	}
	if !found {
		t.Error("expected thread section with an open chat")
	}
}

func TestHelpModal_OpenAndClose(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)

	m = sendKey(m, "?")
	if _, ok := m.modal.State.(*modals.HelpState); !ok {
		t.Fatalf("expected help modal, got %T", m.modal.State)
	}

	m = sendKey(m, keys.Escape)
	if m.modal.IsVisible() {
		t.Error("expected help closed after esc")
	}
}

func TestHelpModal_EnterTriggersShortcut(t *testing.T) {
	m := testModelWithSize(testConfig(t), 120, 40)
	m = sendKey(m, "?")

	m, cmd := sendKeyCmd(m, keys.Enter)
	if cmd == nil {
		t.Fatal("expected a command from enter in help")
	}
	msg, ok := cmd().(modals.HelpShortcutTriggeredMsg)
	if !ok {
		t.Fatalf("expected HelpShortcutTriggeredMsg, got %T", msg)
	}
	if msg.Key != "/" {
		t.Fatalf("expected first shortcut '/', got %q", msg.Key)
	}

	m.Update(msg)
	if !m.list.IsSearchMode() {
		t.Error("expected search mode after triggering / from help")
	}
}

func TestNormalizeHelpDisplayKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tab", "tab"},
		{"ctrl-e", "ctrl+e"},
		{"ctrl-y", "ctrl+y"},
		{"s", "s"},
		{"Enter", ""},
		{"↑/↓ or j/k", ""},
		{"ctrl-v", ""},
	}
	for _, tt := range tests {
		if got := normalizeHelpDisplayKey(tt.in); got != tt.want {
			t.Errorf("normalizeHelpDisplayKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
