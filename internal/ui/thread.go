package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/murmur/internal/chat"
	"github.com/zhubert/murmur/internal/keys"
)

// EmptyThreadText is shown in the thread panel before a chat is opened.
const EmptyThreadText = "Select a chat to start messaging"

// typingTickInterval paces the typing indicator animation
const typingTickInterval = 150 * time.Millisecond

// typingFrames animate the "typing" indicator shown while a reply is pending
var typingFrames = []string{"·  ", "·· ", "···", " ··", "  ·", "   "}

// TypingTickMsg advances the typing indicator
type TypingTickMsg time.Time

// TypingTick returns a command that sends a TypingTickMsg
func TypingTick() tea.Cmd {
	return tea.Tick(typingTickInterval, func(t time.Time) tea.Msg {
		return TypingTickMsg(t)
	})
}

// Thread is the right panel: header, message history and the input box.
type Thread struct {
	width   int
	height  int
	focused bool

	chat    chat.Chat
	hasChat bool

	typing      bool
	typingFrame int

	viewport viewport.Model
	input    textarea.Model
}

// NewThread creates an empty thread panel
func NewThread() *Thread {
	ti := textarea.New()
	ti.Placeholder = "Write a message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Thread{
		viewport: vp,
		input:    ti,
	}
}

// SetSize sets the thread panel dimensions
func (t *Thread) SetSize(width, height int) {
	t.width = width
	t.height = height

	ctx := GetViewContext()

	historyHeight := height - InputTotalHeight
	innerWidth := ctx.InnerWidth(width)
	viewportHeight := ctx.InnerHeight(historyHeight) - ThreadHeaderHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	t.viewport.SetWidth(innerWidth)
	t.viewport.SetHeight(viewportHeight)
	t.input.SetWidth(innerWidth - InputPaddingWidth)

	ctx.Log("Thread.SetSize", "width", width, "height", height, "viewport", viewportHeight)
	t.updateContent()
}

// SetFocused sets the focus state, focusing the input with it
func (t *Thread) SetFocused(focused bool) {
	t.focused = focused
	if focused {
		t.input.Focus()
	} else {
		t.input.Blur()
	}
}

// IsFocused returns the focus state
func (t *Thread) IsFocused() bool {
	return t.focused
}

// SetChat shows c. The viewport jumps to the newest message when the chat
// changes or grows.
func (t *Thread) SetChat(c chat.Chat) {
	changed := !t.hasChat || t.chat.ID != c.ID || len(t.chat.Messages) != len(c.Messages)
	if t.hasChat && t.chat.ID != c.ID {
		t.typing = false
	}
	t.chat = c
	t.hasChat = true
	t.updateContent()
	if changed {
		t.viewport.GotoBottom()
	}
}

// ClearChat returns to the empty state
func (t *Thread) ClearChat() {
	t.chat = chat.Chat{}
	t.hasChat = false
	t.typing = false
	t.input.Reset()
	t.viewport.SetContent("")
}

// HasChat reports whether a chat is open
func (t *Thread) HasChat() bool {
	return t.hasChat
}

// ChatID returns the open chat's id, or ""
func (t *Thread) ChatID() string {
	if !t.hasChat {
		return ""
	}
	return t.chat.ID
}

// SetTyping shows or hides the typing indicator. It returns the tick that
// drives the animation when the indicator turns on.
func (t *Thread) SetTyping(typing bool) tea.Cmd {
	wasTyping := t.typing
	t.typing = typing
	t.typingFrame = 0
	t.updateContent()
	if typing && !wasTyping {
		t.viewport.GotoBottom()
		return TypingTick()
	}
	return nil
}

// IsTyping reports whether the typing indicator is on
func (t *Thread) IsTyping() bool {
	return t.typing
}

// GetInput returns the draft in the input box
func (t *Thread) GetInput() string {
	return t.input.Value()
}

// SetInput replaces the draft
func (t *Thread) SetInput(s string) {
	t.input.SetValue(s)
}

// ClearInput empties the draft
func (t *Thread) ClearInput() {
	t.input.Reset()
}

// InsertText inserts s at the cursor
func (t *Thread) InsertText(s string) {
	t.input.InsertString(s)
}

// AtBottom reports whether the history is scrolled to the newest message
func (t *Thread) AtBottom() bool {
	return t.viewport.AtBottom()
}

// maxBubbleWidth is the widest a bubble may grow, including its padding.
func (t *Thread) maxBubbleWidth() int {
	w := t.viewport.Width()
	if w <= 0 {
		w = DefaultWrapWidth
	}
	maxW := w * 3 / MaxBubbleWidthRatio
	if maxW < 10 {
		maxW = w
	}
	return maxW
}

// renderMessage renders one message as a bubble aligned to its side.
func (t *Thread) renderMessage(m chat.Message) string {
	width := t.viewport.Width()
	if width <= 0 {
		width = DefaultWrapWidth
	}
	maxW := t.maxBubbleWidth()

	mine := m.IsMine()
	align := lipgloss.Left
	if mine {
		align = lipgloss.Right
	}

	var parts []string
	if !mine && t.chat.Kind != chat.KindChat && m.Sender != "" {
		parts = append(parts, SenderStyle.Render(m.Sender))
	}

	if m.IsSticker {
		parts = append(parts, lipgloss.NewStyle().Padding(0, 1).Render(m.Text))
	} else {
		style := TheirsBubbleStyle
		if mine {
			style = MineBubbleStyle
		}
		inner := maxW - style.GetHorizontalFrameSize()
		if inner < 1 {
			inner = 1
		}
		body := renderMessageText(m.Text, inner)
		if ansi.StringWidth(longestLine(body)) < inner {
			style = style.MaxWidth(maxW)
		} else {
			style = style.Width(maxW)
		}
		parts = append(parts, style.Render(body))
	}

	meta := m.TimeLabel
	if len(m.Reactions) > 0 {
		meta = ReactionStyle.Render(strings.Join(m.Reactions, " ")) + "  " + BubbleMetaStyle.Render(meta)
	} else {
		meta = BubbleMetaStyle.Render(meta)
	}
	parts = append(parts, meta)

	block := lipgloss.JoinVertical(align, parts...)
	return lipgloss.PlaceHorizontal(width, align, block)
}

// longestLine returns the widest line of s.
func longestLine(s string) string {
	var longest string
	for _, line := range strings.Split(s, "\n") {
		if ansi.StringWidth(line) > ansi.StringWidth(longest) {
			longest = line
		}
	}
	return longest
}

// updateContent rebuilds the viewport content from the chat.
func (t *Thread) updateContent() {
	if !t.hasChat {
		return
	}

	var sb strings.Builder
	if len(t.chat.Messages) == 0 {
		sb.WriteString(EmptyStateStyle.Render("No messages yet. Say hello!"))
	}
	for i, m := range t.chat.Messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(t.renderMessage(m))
	}

	if t.typing {
		frame := typingFrames[t.typingFrame%len(typingFrames)]
		sb.WriteString("\n\n")
		sb.WriteString(BubbleMetaStyle.Render(t.chat.Name + " is typing " + frame))
	}

	t.viewport.SetContent(sb.String())
}

// renderHeader renders the name and presence line above the history.
func (t *Thread) renderHeader(width int) string {
	name := ThreadHeaderStyle.Render(truncateLine(t.chat.Name, width))
	presenceStyle := ThreadPresenceStyle
	if t.chat.Online && t.chat.Kind == chat.KindChat {
		presenceStyle = ThreadOnlineStyle
	}
	presence := presenceStyle.Render(truncateLine(t.chat.Presence(), width))
	return name + "\n" + presence
}

// Update handles messages
func (t *Thread) Update(msg tea.Msg) (*Thread, tea.Cmd) {
	if _, ok := msg.(TypingTickMsg); ok {
		if !t.typing {
			return t, nil
		}
		t.typingFrame++
		t.updateContent()
		return t, TypingTick()
	}

	var cmds []tea.Cmd

	if t.focused && t.hasChat {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case keys.PgUp, keys.PgDown, "ctrl+up", "ctrl+down", keys.CtrlU, keys.CtrlD:
				var cmd tea.Cmd
				t.viewport, cmd = t.viewport.Update(msg)
				return t, cmd
			}

			var cmd tea.Cmd
			t.input, cmd = t.input.Update(msg)
			return t, cmd
		}
	}

	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return t, tea.Batch(cmds...)
}

// View renders the thread panel
func (t *Thread) View() string {
	panelStyle := PanelStyle
	if t.focused {
		panelStyle = PanelFocusedStyle
	}

	if !t.hasChat {
		ctx := GetViewContext()
		empty := lipgloss.Place(
			ctx.InnerWidth(t.width), ctx.InnerHeight(t.height),
			lipgloss.Center, lipgloss.Center,
			EmptyStateStyle.Render(EmptyThreadText),
		)
		return panelStyle.Width(t.width).Height(t.height).Render(empty)
	}

	historyHeight := t.height - InputTotalHeight
	header := t.renderHeader(t.viewport.Width())
	history := panelStyle.Width(t.width).Height(historyHeight).Render(header + "\n" + t.viewport.View())

	inputStyle := ChatInputStyle
	if t.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(t.width).Render(t.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, history, inputArea)
}
