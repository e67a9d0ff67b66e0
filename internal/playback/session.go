// Package playback drives the full-screen status viewer: a single session
// walks an ordered list of statuses, filling a progress bar on a timer and
// advancing (or closing) when the bar is full.
//
// A session owns exactly one timer handle. The handle is a (session id,
// generation) pair carried by every TickMsg; cancelling the handle bumps the
// generation so that any tick already in flight is recognised as stale and
// dropped. Bubble Tea delivers ticks on the update goroutine, so no locking
// is needed.
package playback

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	perrors "github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/status"
)

// Default timing: the bar fills in five seconds, refreshed every 100ms.
const (
	DefaultDuration     = 5 * time.Second
	DefaultTickInterval = 100 * time.Millisecond
)

// Transition reports what an operation did to the session.
type Transition int

const (
	None Transition = iota
	Advanced
	Rewound
	Closed
)

func (t Transition) String() string {
	switch t {
	case Advanced:
		return "advanced"
	case Rewound:
		return "rewound"
	case Closed:
		return "closed"
	default:
		return "none"
	}
}

// TickMsg is delivered by the session's timer.
type TickMsg struct {
	SessionID string
	Gen       uint64
}

// Options configures playback timing.
type Options struct {
	Duration     time.Duration
	TickInterval time.Duration
}

// DefaultOptions returns the standard five second playback.
func DefaultOptions() Options {
	return Options{Duration: DefaultDuration, TickInterval: DefaultTickInterval}
}

func (o Options) normalize() Options {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.TickInterval > o.Duration {
		o.TickInterval = o.Duration
	}
	return o
}

// Session is one run of the status viewer, from open to close.
type Session struct {
	id       string
	statuses []status.Status
	opts     Options

	index   int
	elapsed time.Duration

	gen    uint64
	armed  bool
	paused bool
	closed bool

	log *slog.Logger
}

// Open starts a session over a snapshot of statuses at index start.
// The returned session is Playing(start, 0) but its timer is not armed
// until Start is called.
func Open(statuses []status.Status, start int, opts Options) (*Session, error) {
	const op = perrors.Op("playback.Open")
	if len(statuses) == 0 {
		return nil, perrors.NoStatuses(op)
	}
	if start < 0 || start >= len(statuses) {
		return nil, perrors.StatusIndexOutOfRange(op, start, len(statuses))
	}

	snapshot := make([]status.Status, len(statuses))
	copy(snapshot, statuses)

	s := &Session{
		id:       uuid.NewString(),
		statuses: snapshot,
		opts:     opts.normalize(),
		index:    start,
		log:      logger.WithComponent("playback"),
	}
	s.log.Debug("session opened", "session", s.id, "index", start, "count", len(snapshot))
	return s, nil
}

// ID returns the session identifier carried by its ticks.
func (s *Session) ID() string { return s.id }

// Index returns the position of the status being shown.
func (s *Session) Index() int { return s.index }

// Len returns the number of statuses in the session.
func (s *Session) Len() int { return len(s.statuses) }

// Current returns the status being shown.
func (s *Session) Current() status.Status { return s.statuses[s.index] }

// Statuses returns the snapshot the session plays through.
func (s *Session) Statuses() []status.Status { return s.statuses }

// Closed reports whether the session has reached its terminal state.
func (s *Session) Closed() bool { return s.closed }

// Paused reports whether playback is held.
func (s *Session) Paused() bool { return s.paused }

// Armed reports whether a live timer is driving the session.
func (s *Session) Armed() bool { return s.armed }

// Options returns the timing the session runs with.
func (s *Session) Options() Options { return s.opts }

// Progress returns the fill of the current status's bar, in [0,100].
func (s *Session) Progress() float64 {
	if s.elapsed >= s.opts.Duration {
		return 100
	}
	return 100 * float64(s.elapsed) / float64(s.opts.Duration)
}

// Start arms the timer for the current index.
func (s *Session) Start() tea.Cmd {
	if s.closed || s.paused {
		return nil
	}
	return s.arm()
}

// arm cancels any live handle and schedules the next tick.
func (s *Session) arm() tea.Cmd {
	s.cancel()
	s.armed = true
	id, gen := s.id, s.gen
	return tea.Tick(s.opts.TickInterval, func(time.Time) tea.Msg {
		return TickMsg{SessionID: id, Gen: gen}
	})
}

func (s *Session) cancel() {
	s.gen++
	s.armed = false
}

// Live reports whether msg was produced by the session's current timer.
func (s *Session) Live(msg TickMsg) bool {
	return !s.closed && s.armed && msg.SessionID == s.id && msg.Gen == s.gen
}

// Update consumes a TickMsg. Ticks from other sessions or from a cancelled
// handle are ignored. A live tick advances the bar and re-arms the timer
// unless the session closed.
func (s *Session) Update(msg tea.Msg) (Transition, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return None, nil
	}
	if !s.Live(tick) {
		if tick.SessionID == s.id {
			s.log.Debug("stale tick dropped", "session", s.id, "gen", tick.Gen, "current", s.gen)
		}
		return None, nil
	}
	// The handle that produced this tick has fired.
	s.armed = false

	tr := s.Tick()
	if s.closed {
		return tr, nil
	}
	return tr, s.arm()
}

// Tick advances the bar by one interval. When the bar is full the session
// moves to the next status, or closes after the last one.
func (s *Session) Tick() Transition {
	if s.closed || s.paused {
		return None
	}
	s.elapsed += s.opts.TickInterval
	if s.elapsed < s.opts.Duration {
		return None
	}
	if s.index < len(s.statuses)-1 {
		s.moveTo(s.index + 1)
		return Advanced
	}
	s.close("completed")
	return Closed
}

// Next shows the following status. At the last index it does nothing;
// only the timer closes the viewer.
func (s *Session) Next() (Transition, tea.Cmd) {
	if s.closed || s.index >= len(s.statuses)-1 {
		return None, nil
	}
	s.moveTo(s.index + 1)
	return Advanced, s.restart()
}

// Previous shows the preceding status. At index 0 it does nothing.
func (s *Session) Previous() (Transition, tea.Cmd) {
	if s.closed || s.index == 0 {
		return None, nil
	}
	s.moveTo(s.index - 1)
	return Rewound, s.restart()
}

// SetIndex jumps to index i, resetting the bar and restarting the timer.
func (s *Session) SetIndex(i int) (tea.Cmd, error) {
	if s.closed {
		return nil, nil
	}
	if i < 0 || i >= len(s.statuses) {
		return nil, perrors.StatusIndexOutOfRange("playback.SetIndex", i, len(s.statuses))
	}
	s.moveTo(i)
	return s.restart(), nil
}

// Close ends the session. It is safe to call more than once.
func (s *Session) Close() Transition {
	if s.closed {
		return None
	}
	s.close("dismissed")
	return Closed
}

// Pause holds playback without touching progress.
func (s *Session) Pause() {
	if s.closed || s.paused {
		return
	}
	s.paused = true
	s.cancel()
	s.log.Debug("paused", "session", s.id, "index", s.index, "progress", s.Progress())
}

// Resume continues a held session.
func (s *Session) Resume() tea.Cmd {
	if s.closed || !s.paused {
		return nil
	}
	s.paused = false
	return s.arm()
}

// TogglePause flips between paused and playing.
func (s *Session) TogglePause() tea.Cmd {
	if s.paused {
		return s.Resume()
	}
	s.Pause()
	return nil
}

// restart re-arms the timer after a manual index change. Navigating while
// held resumes playback.
func (s *Session) restart() tea.Cmd {
	s.paused = false
	return s.arm()
}

func (s *Session) moveTo(i int) {
	s.cancel()
	s.index = i
	s.elapsed = 0
	s.log.Debug("index changed", "session", s.id, "index", i)
}

func (s *Session) close(reason string) {
	s.cancel()
	s.closed = true
	s.paused = false
	s.log.Debug("session closed", "session", s.id, "reason", reason, "index", s.index)
}
