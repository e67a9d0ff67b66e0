package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/murmur/internal/chat"
	"github.com/zhubert/murmur/internal/clipboard"
	"github.com/zhubert/murmur/internal/composer"
	"github.com/zhubert/murmur/internal/config"
	"github.com/zhubert/murmur/internal/emoji"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/moderation"
	"github.com/zhubert/murmur/internal/notification"
	"github.com/zhubert/murmur/internal/playback"
	"github.com/zhubert/murmur/internal/seed"
	"github.com/zhubert/murmur/internal/status"
	"github.com/zhubert/murmur/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusChatList Focus = iota
	FocusThread
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusThread:
		return "thread"
	default:
		return "chat-list"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	header  *ui.Header
	footer  *ui.Footer
	list    *ui.ChatList
	thread  *ui.Thread
	viewer  *ui.StatusViewer
	picker  *ui.PickerOverlay
	modal   *ui.Modal

	width  int
	height int
	focus  Focus

	chats    *chat.Store
	statuses *status.Store
	replies  []string

	messages *composer.MessageComposer
	draft    *composer.StatusComposer
	filter   *moderation.Filter

	clipboard clipboard.Clipboard
	notifier  notification.Notifier

	// Auto reply bookkeeping
	pendingReplies map[string]int // chat id -> replies still to arrive
	replyCursor    int

	publishErr error // set by the status composer callback

	log *slog.Logger
}

// Option configures a Model at construction.
type Option func(*options)

type options struct {
	chats     *chat.Store
	statuses  *status.Store
	replies   []string
	catalog   *emoji.Catalog
	clipboard clipboard.Clipboard
	notifier  notification.Notifier
}

// WithStores replaces the seeded chat and status stores.
func WithStores(chats *chat.Store, statuses *status.Store) Option {
	return func(o *options) {
		o.chats = chats
		o.statuses = statuses
	}
}

// WithReplies sets the canned lines used by auto reply.
func WithReplies(replies []string) Option {
	return func(o *options) { o.replies = replies }
}

// WithCatalog sets the emoji and sticker catalog behind the picker.
func WithCatalog(c *emoji.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithClipboard sets the clipboard used by copy and paste.
func WithClipboard(c clipboard.Clipboard) Option {
	return func(o *options) { o.clipboard = c }
}

// WithNotifier sets where reply notifications go.
func WithNotifier(n notification.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// StartupModalMsg is sent on app start to trigger the welcome modal
type StartupModalMsg struct{}

// New creates a new app model. Anything not supplied through opts comes
// from the bundled seed data.
func New(cfg *config.Config, version string, opts ...Option) *Model {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.chats == nil || o.statuses == nil || o.replies == nil {
		data := seed.Default()
		chats, statuses := data.Stores()
		if o.chats == nil {
			o.chats = chats
		}
		if o.statuses == nil {
			o.statuses = statuses
		}
		if o.replies == nil {
			o.replies = data.Replies
		}
	}
	if o.catalog == nil {
		o.catalog = emoji.Default()
	}
	if o.clipboard == nil {
		o.clipboard = &clipboard.Memory{}
	}
	if o.notifier == nil {
		o.notifier = notification.Noop{}
	}

	log := logger.WithComponent("app")

	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	filter, err := moderation.NewFilter(cfg.GetBlockedWords(), cfg.GetCensorRune())
	if err != nil {
		log.Warn("word filter disabled", "error", err)
		filter = nil
	}

	m := &Model{
		config:         cfg,
		version:        version,
		header:         ui.NewHeader(),
		footer:         ui.NewFooter(),
		list:           ui.NewChatList(),
		thread:         ui.NewThread(),
		viewer:         ui.NewStatusViewer(),
		picker:         ui.NewPickerOverlay(emoji.NewPicker(o.catalog, emoji.DefaultColumns)),
		modal:          ui.NewModal(),
		focus:          FocusChatList,
		chats:          o.chats,
		statuses:       o.statuses,
		replies:        o.replies,
		filter:         filter,
		clipboard:      o.clipboard,
		notifier:       o.notifier,
		pendingReplies: make(map[string]int),
		log:            log,
	}

	m.messages = composer.NewMessageComposer(m.chats,
		composer.WithPicker(m.picker),
		composer.WithFilter(filter),
	)
	m.draft = composer.NewStatusComposer(m.publishStatus, filter)

	m.header.SetUserName(cfg.GetUserName())
	m.list.SetFocused(true)
	m.refreshChats()
	m.refreshStatuses()

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return StartupModalMsg{}
	}
}

// Focus returns the focused panel
func (m *Model) Focus() Focus {
	return m.focus
}

// ActiveChatID returns the chat open in the thread, or ""
func (m *Model) ActiveChatID() string {
	return m.thread.ChatID()
}

// setFocus moves focus to f and returns any command the panel needs.
func (m *Model) setFocus(f Focus) tea.Cmd {
	if f == FocusThread && !m.thread.HasChat() {
		return nil
	}
	if m.focus != f {
		m.log.Debug("focus changed", "from", m.focus, "to", f)
	}
	m.focus = f
	m.list.SetFocused(f == FocusChatList)
	m.thread.SetFocused(f == FocusThread)
	return nil
}

// toggleFocus switches between the chat list and the thread
func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == FocusChatList {
		return m.setFocus(FocusThread)
	}
	return m.setFocus(FocusChatList)
}

// refreshChats reloads the list and the open thread from the store.
func (m *Model) refreshChats() {
	m.list.SetChats(m.chats.Filter(m.list.Query()))
	if id := m.thread.ChatID(); id != "" {
		if c, err := m.chats.Get(id); err == nil {
			m.thread.SetChat(c)
		}
	}
	m.header.SetUnread(m.chats.TotalUnread())
}

// refreshStatuses reloads the status rail from the store.
func (m *Model) refreshStatuses() {
	m.list.SetStatuses(m.statuses.All())
}

// openChat shows the chat in the thread, clears its unread badge and moves
// focus to the input.
func (m *Model) openChat(id string) tea.Cmd {
	if err := m.chats.MarkRead(id); err != nil {
		m.log.Warn("open chat failed", "chat", id, "error", err)
		return m.ShowFlashError("Chat not found")
	}
	c, err := m.chats.Get(id)
	if err != nil {
		return m.ShowFlashError("Chat not found")
	}

	m.thread.SetChat(c)
	m.messages.SetChat(id)
	m.list.SetActive(id)
	m.refreshChats()
	logger.WithChat(id).Debug("chat opened", "messages", len(c.Messages))

	var cmds []tea.Cmd
	cmds = append(cmds, m.setFocus(FocusThread))
	if m.pendingReplies[id] > 0 {
		cmds = append(cmds, m.thread.SetTyping(true))
	}
	return tea.Batch(cmds...)
}

// statusOptions returns the playback timing from the config.
func (m *Model) statusOptions() playback.Options {
	return playback.Options{
		Duration:     m.config.StatusDuration.D(),
		TickInterval: m.config.TickInterval.D(),
	}
}
