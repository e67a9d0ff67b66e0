package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/samber/lo"
	"github.com/zhubert/murmur/internal/chat"
	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/status"
)

// SearchCharLimit caps the chat list search query
const SearchCharLimit = 64

// MyStatusLabel is the caption of the add tile at the start of the rail
const MyStatusLabel = "My status"

// KindTab narrows the chat list to one kind of conversation.
type KindTab int

const (
	TabAll KindTab = iota
	TabChats
	TabGroups
	TabChannels
)

var kindTabs = []KindTab{TabAll, TabChats, TabGroups, TabChannels}

func (k KindTab) String() string {
	switch k {
	case TabChats:
		return "Chats"
	case TabGroups:
		return "Groups"
	case TabChannels:
		return "Channels"
	default:
		return "All"
	}
}

// apply returns the chats matching the tab.
func (k KindTab) apply(chats []chat.Chat) []chat.Chat {
	switch k {
	case TabChats:
		return chat.OfKind(chats, chat.KindChat)
	case TabGroups:
		return chat.OfKind(chats, chat.KindGroup)
	case TabChannels:
		return chat.OfKind(chats, chat.KindChannel)
	default:
		return chats
	}
}

// ChatList is the left panel: the status rail, search, kind tabs and the
// list of conversations.
type ChatList struct {
	width   int
	height  int
	focused bool

	chats        []chat.Chat // after search, before the kind tab
	visible      []chat.Chat
	selectedIdx  int
	scrollOffset int
	activeID     string
	kind         KindTab

	searchMode  bool
	searchInput textinput.Model

	statuses    []status.Status
	railFocused bool
	railIdx     int // 0 is the "My status" tile
}

// NewChatList creates an empty chat list
func NewChatList() *ChatList {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = SearchCharLimit
	ti.Prompt = ""

	return &ChatList{searchInput: ti}
}

// SetSize sets the panel dimensions
func (l *ChatList) SetSize(width, height int) {
	l.width = width
	l.height = height
	GetViewContext().Log("ChatList.SetSize", "width", width, "height", height)
}

// SetFocused sets the focus state
func (l *ChatList) SetFocused(focused bool) {
	l.focused = focused
	if !focused {
		l.railFocused = false
	}
}

// IsFocused returns the focus state
func (l *ChatList) IsFocused() bool {
	return l.focused
}

// SetChats replaces the listed chats, keeping the selection on the same chat
// when it is still listed.
func (l *ChatList) SetChats(chats []chat.Chat) {
	var selectedID string
	if c, ok := l.SelectedChat(); ok {
		selectedID = c.ID
	}
	l.chats = chats
	l.refresh(selectedID)
}

// refresh recomputes the visible list and restores the selection by id.
func (l *ChatList) refresh(selectedID string) {
	l.visible = l.kind.apply(l.chats)
	if _, idx, ok := lo.FindIndexOf(l.visible, func(c chat.Chat) bool { return c.ID == selectedID }); ok {
		l.selectedIdx = idx
	}
	l.clampSelection()
}

func (l *ChatList) clampSelection() {
	if l.selectedIdx >= len(l.visible) {
		l.selectedIdx = len(l.visible) - 1
	}
	if l.selectedIdx < 0 {
		l.selectedIdx = 0
	}
}

// Visible returns the chats currently listed
func (l *ChatList) Visible() []chat.Chat {
	return l.visible
}

// SelectedChat returns the highlighted chat
func (l *ChatList) SelectedChat() (chat.Chat, bool) {
	if l.selectedIdx < 0 || l.selectedIdx >= len(l.visible) {
		return chat.Chat{}, false
	}
	return l.visible[l.selectedIdx], true
}

// SelectByID highlights the chat with id, if listed
func (l *ChatList) SelectByID(id string) bool {
	_, idx, ok := lo.FindIndexOf(l.visible, func(c chat.Chat) bool { return c.ID == id })
	if ok {
		l.selectedIdx = idx
	}
	return ok
}

// SetActive marks the chat whose thread is open
func (l *ChatList) SetActive(id string) {
	l.activeID = id
}

// Kind returns the active kind tab
func (l *ChatList) Kind() KindTab {
	return l.kind
}

// CycleKind moves to the next (delta > 0) or previous kind tab, wrapping.
func (l *ChatList) CycleKind(delta int) {
	n := len(kindTabs)
	l.kind = kindTabs[((int(l.kind)+delta)%n+n)%n]
	var selectedID string
	if c, ok := l.SelectedChat(); ok {
		selectedID = c.ID
	}
	l.refresh(selectedID)
}

// EnterSearchMode activates search mode
func (l *ChatList) EnterSearchMode() tea.Cmd {
	l.searchMode = true
	l.railFocused = false
	l.searchInput.SetValue("")
	return l.searchInput.Focus()
}

// ExitSearchMode deactivates search mode and clears the query
func (l *ChatList) ExitSearchMode() {
	l.searchMode = false
	l.searchInput.Blur()
	l.searchInput.SetValue("")
}

// IsSearchMode returns whether search mode is active
func (l *ChatList) IsSearchMode() bool {
	return l.searchMode
}

// Query returns the current search query
func (l *ChatList) Query() string {
	return l.searchInput.Value()
}

// SetStatuses replaces the statuses shown in the rail, newest first
func (l *ChatList) SetStatuses(statuses []status.Status) {
	l.statuses = statuses
	if l.railIdx > len(statuses) {
		l.railIdx = len(statuses)
	}
}

// FocusRail moves keyboard focus to the status rail
func (l *ChatList) FocusRail() {
	l.railFocused = true
	l.searchMode = false
	l.searchInput.Blur()
}

// BlurRail returns keyboard focus to the list
func (l *ChatList) BlurRail() {
	l.railFocused = false
}

// IsRailFocused reports whether the rail has keyboard focus
func (l *ChatList) IsRailFocused() bool {
	return l.railFocused
}

// RailIndex returns the highlighted tile; 0 is "My status"
func (l *ChatList) RailIndex() int {
	return l.railIdx
}

// MoveRail moves the rail highlight by delta, clamped to the tiles.
func (l *ChatList) MoveRail(delta int) {
	l.railIdx += delta
	if l.railIdx < 0 {
		l.railIdx = 0
	}
	if l.railIdx > len(l.statuses) {
		l.railIdx = len(l.statuses)
	}
}

// RailSelection reports what the highlighted tile opens: the composer when
// mine is true, otherwise the viewer at statusIndex.
func (l *ChatList) RailSelection() (mine bool, statusIndex int) {
	if l.railIdx == 0 {
		return true, -1
	}
	return false, l.railIdx - 1
}

// Update handles key presses while the list is focused
func (l *ChatList) Update(msg tea.Msg) (*ChatList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !l.focused {
		return l, nil
	}

	if l.searchMode {
		switch keyMsg.String() {
		case keys.Escape:
			l.ExitSearchMode()
			return l, nil
		case keys.Enter:
			// Keep the filter; the caller opens the selection.
			l.searchMode = false
			l.searchInput.Blur()
			return l, nil
		case keys.Up:
			l.move(-1)
			return l, nil
		case keys.Down:
			l.move(1)
			return l, nil
		}
		var cmd tea.Cmd
		l.searchInput, cmd = l.searchInput.Update(msg)
		return l, cmd
	}

	if l.railFocused {
		switch keyMsg.String() {
		case keys.Left, "h":
			l.MoveRail(-1)
		case keys.Right, "l":
			l.MoveRail(1)
		case keys.Escape, keys.Down, "j":
			l.BlurRail()
		}
		return l, nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		l.move(-1)
	case keys.Down, "j":
		l.move(1)
	case keys.Home:
		l.selectedIdx = 0
	case keys.End:
		l.selectedIdx = len(l.visible) - 1
		l.clampSelection()
	}
	return l, nil
}

func (l *ChatList) move(delta int) {
	l.selectedIdx += delta
	l.clampSelection()
}

// renderRail renders the status tiles, scrolled so the highlight is visible.
func (l *ChatList) renderRail(width int) string {
	fit := width / (RailTileWidth + 1)
	if fit < 1 {
		fit = 1
	}

	start := 0
	if l.railIdx >= fit {
		start = l.railIdx - fit + 1
	}

	var tiles []string
	for i := start; i <= len(l.statuses) && i < start+fit; i++ {
		tiles = append(tiles, l.renderTile(i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// renderTile renders rail tile i; tile 0 is the add tile.
func (l *ChatList) renderTile(i int) string {
	style := RailTileStyle
	if l.railFocused && i == l.railIdx {
		style = RailTileSelectedStyle
	}

	var face, caption string
	if i == 0 {
		face = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render("+")
		caption = MyStatusLabel
	} else {
		st := l.statuses[i-1]
		face = lipgloss.NewStyle().
			Foreground(lipgloss.Color(st.TextColor)).
			Background(lipgloss.Color(st.BackgroundColor)).
			Bold(true).
			Padding(0, 1).
			Render(st.Initials())
		caption = st.AuthorName
	}

	captionStyle := lipgloss.NewStyle().Foreground(ColorTextMuted).Width(RailTileWidth).Align(lipgloss.Center)
	tile := lipgloss.JoinVertical(lipgloss.Center,
		style.Render(face),
		captionStyle.Render(truncateLine(caption, RailTileWidth)),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, tile, " ")
}

// renderTabs renders the kind tab row
func (l *ChatList) renderTabs() string {
	parts := make([]string, 0, len(kindTabs))
	for _, k := range kindTabs {
		if k == l.kind {
			parts = append(parts, KindTabActiveStyle.Render(k.String()))
		} else {
			parts = append(parts, KindTabStyle.Render(k.String()))
		}
	}
	return strings.Join(parts, "")
}

// renderItem renders one chat as two lines: name and time, preview and badge.
func (l *ChatList) renderItem(c chat.Chat, selected bool, width int) string {
	inner := width - 2 // ListItemStyle padding
	if inner < 4 {
		inner = 4
	}

	marker := "  "
	if c.ID == l.activeID {
		marker = "● "
	}

	name := marker + c.Name
	if c.Online && c.Kind == chat.KindChat {
		name += " " + ThreadOnlineStyle.Render("•")
	}
	timeLabel := ListTimeStyle.Render(c.TimeLabel())
	name = truncateLine(name, inner-ansi.StringWidth(timeLabel)-1)
	gap := inner - ansi.StringWidth(name) - ansi.StringWidth(timeLabel)
	if gap < 1 {
		gap = 1
	}
	top := name + strings.Repeat(" ", gap) + timeLabel

	var badge string
	if c.Unread > 0 {
		badge = UnreadBadgeStyle.Render(fmt.Sprintf("%d", c.Unread))
	}
	preview := "  " + truncateLine(c.Preview(), inner-ansi.StringWidth(badge)-3)
	gap = inner - ansi.StringWidth(preview) - ansi.StringWidth(badge)
	if gap < 1 {
		gap = 1
	}
	bottom := ListPreviewStyle.Render(preview) + strings.Repeat(" ", gap) + badge

	style := ListItemStyle.Width(width)
	if selected {
		style = ListSelectedStyle.Width(width)
	}
	return style.Render(top + "\n" + bottom)
}

// View renders the chat list
func (l *ChatList) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if l.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(l.width)
	innerHeight := ctx.InnerHeight(l.height)

	var header []string
	header = append(header, l.renderRail(innerWidth))

	searchStyle := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	if l.searchMode || l.Query() != "" {
		l.searchInput.SetWidth(innerWidth - 3) // Leave room for "/ "
		header = append(header, searchStyle.Render("/")+" "+l.searchInput.View())
	} else {
		header = append(header, ListPreviewStyle.Render("/ search"))
	}
	header = append(header, l.renderTabs())

	headerBlock := strings.Join(header, "\n")
	listHeight := innerHeight - lipgloss.Height(headerBlock)
	if listHeight < 0 {
		listHeight = 0
	}

	var allLines []string
	selectedStartLine := 0
	if len(l.visible) == 0 {
		msg := "No chats."
		if l.Query() != "" {
			msg = "No matches."
		}
		allLines = append(allLines, EmptyStateStyle.Render(msg))
	}
	for i, c := range l.visible {
		selected := i == l.selectedIdx && !l.railFocused
		if i == l.selectedIdx {
			selectedStartLine = len(allLines)
		}
		rendered := l.renderItem(c, selected, innerWidth)
		allLines = append(allLines, strings.Split(rendered, "\n")...)
	}

	// Keep the selected chat (two lines) on screen.
	if selectedStartLine < l.scrollOffset {
		l.scrollOffset = selectedStartLine
	} else if selectedStartLine+2 > l.scrollOffset+listHeight {
		l.scrollOffset = selectedStartLine + 2 - listHeight
	}
	maxScroll := len(allLines) - listHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if l.scrollOffset > maxScroll {
		l.scrollOffset = maxScroll
	}
	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}

	if l.scrollOffset < len(allLines) {
		allLines = allLines[l.scrollOffset:]
	}
	if len(allLines) > listHeight {
		allLines = allLines[:listHeight]
	}

	content := headerBlock
	if len(allLines) > 0 {
		content += "\n" + strings.Join(allLines, "\n")
	}
	return style.Width(l.width).Height(l.height).Render(content)
}
