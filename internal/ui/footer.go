package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which set of key hints the footer shows.
type FooterMode int

const (
	FooterChatList FooterMode = iota
	FooterSearch
	FooterRail
	FooterThread
	FooterPicker
	FooterViewer
)

// FlashType is the severity of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash stays up unless told otherwise
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often expiry is checked
const flashTickInterval = 500 * time.Millisecond

// FlashTickMsg asks the footer to drop an expired flash
type FlashTickMsg time.Time

// FlashTick returns a command that sends a FlashTickMsg after a short delay
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FlashMessage is a transient message shown in place of the key hints
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	mode         FooterMode
	hasChat      bool // Whether a thread is open
	paused       bool // Whether the status viewer is paused
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "enter", Desc: "open"},
			{Key: "tab", Desc: "thread"},
			{Key: "/", Desc: "search"},
			{Key: "[/]", Desc: "filter"},
			{Key: "r", Desc: "statuses"},
			{Key: "s", Desc: "new status"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the chat list bindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(mode FooterMode, hasChat, paused bool) {
	f.mode = mode
	f.hasChat = hasChat
	f.paused = paused
}

// Mode returns the current binding set
func (f *Footer) Mode() FooterMode {
	return f.mode
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// currentBindings returns the hints for the current mode
func (f *Footer) currentBindings() []KeyBinding {
	switch f.mode {
	case FooterSearch:
		return []KeyBinding{
			{Key: "type", Desc: "filter"},
			{Key: "enter", Desc: "open"},
			{Key: "esc", Desc: "cancel"},
		}
	case FooterRail:
		return []KeyBinding{
			{Key: "←/→", Desc: "select"},
			{Key: "enter", Desc: "view"},
			{Key: "s", Desc: "new status"},
			{Key: "esc", Desc: "back"},
		}
	case FooterThread:
		return []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+e", Desc: "emoji"},
			{Key: "ctrl+y", Desc: "copy last"},
			{Key: "tab", Desc: "chats"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	case FooterPicker:
		return []KeyBinding{
			{Key: "arrows", Desc: "move"},
			{Key: "enter", Desc: "send"},
			{Key: "i", Desc: "insert"},
			{Key: "tab", Desc: "emoji/stickers"},
			{Key: "esc", Desc: "close"},
		}
	case FooterViewer:
		pause := "pause"
		if f.paused {
			pause = "resume"
		}
		return []KeyBinding{
			{Key: "←/→", Desc: "previous/next"},
			{Key: "space", Desc: pause},
			{Key: "esc", Desc: "close"},
		}
	}

	var out []KeyBinding
	for _, b := range f.bindings {
		// Skip tab when no chat is open
		if b.Key == "tab" && !f.hasChat {
			continue
		}
		out = append(out, b)
	}
	return out
}

// renderFlash renders the flash message with its icon
func (f *Footer) renderFlash() string {
	var icon string
	var color = ColorInfo
	switch f.flashMessage.Type {
	case FlashError:
		icon, color = "✕", ColorError
	case FlashWarning:
		icon, color = "⚠", ColorWarning
	case FlashSuccess:
		icon, color = "✓", ColorOnline
	default:
		icon = "ℹ"
	}
	style := lipgloss.NewStyle().Foreground(color)
	return style.Bold(true).Render(icon) + " " + style.Render(f.flashMessage.Text)
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}

	var parts []string
	for _, b := range f.currentBindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}
