package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/murmur/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()
	footer := m.footer.View()

	// The status viewer covers everything but the footer
	if m.viewer.IsOpen() {
		return lipgloss.JoinVertical(lipgloss.Left, m.viewer.View(), footer)
	}

	header := m.header.View()

	// Render panels side by side
	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.list.View(),
		m.thread.View(),
	)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		panels,
		footer,
	)

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	if m.picker.IsOpen() {
		x, y := m.pickerOrigin()
		view = ui.Overlay(view, m.picker.View(), x, y, m.width, m.height)
	}

	return view
}

// pickerOrigin places the picker in the thread pane, just above the input.
func (m *Model) pickerOrigin() (int, int) {
	ctx := ui.GetViewContext()
	pickerHeight := lipgloss.Height(m.picker.View())
	x := ctx.ChatListWidth + 1
	y := ctx.HeaderHeight + ctx.ContentHeight - ui.InputTotalHeight - pickerHeight
	if y < ctx.HeaderHeight {
		y = ctx.HeaderHeight
	}
	return x, y
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	mode := ui.FooterChatList
	paused := false
	switch {
	case m.viewer.IsOpen():
		mode = ui.FooterViewer
		paused = m.viewer.Session().Paused()
	case m.picker.IsOpen():
		mode = ui.FooterPicker
	case m.list.IsSearchMode():
		mode = ui.FooterSearch
	case m.list.IsRailFocused():
		mode = ui.FooterRail
	case m.focus == FocusThread:
		mode = ui.FooterThread
	}
	m.footer.SetContext(mode, m.thread.HasChat(), paused)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.list.SetSize(ctx.ChatListWidth, ctx.ContentHeight)
	m.thread.SetSize(ctx.ThreadWidth, ctx.ContentHeight)
	m.viewer.SetSize(ctx.TerminalWidth, ctx.TerminalHeight-ctx.FooterHeight)
}
