package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/playback"
)

// openViewer starts playback at index i of the status rail. The session
// snapshots the statuses, so statuses posted while it plays do not shift it.
func (m *Model) openViewer(i int) (tea.Model, tea.Cmd) {
	session, err := playback.Open(m.statuses.All(), i, m.statusOptions())
	if err != nil {
		m.log.Warn("open status viewer failed", "index", i, "error", err)
		return m, m.ShowFlashError("No status to show")
	}
	m.viewer.SetSession(session)
	m.log.Debug("status viewer opened", "session", session.ID(), "index", i)
	return m, session.Start()
}

// closeViewer drops the session. Any tick still in flight is ignored.
func (m *Model) closeViewer() {
	if s := m.viewer.Session(); s != nil {
		s.Close()
		m.log.Debug("status viewer closed", "session", s.ID())
	}
	m.viewer.SetSession(nil)
}

// handlePlaybackTick feeds a timer tick to the open session.
func (m *Model) handlePlaybackTick(msg playback.TickMsg) (tea.Model, tea.Cmd) {
	session := m.viewer.Session()
	if session == nil {
		return m, nil
	}
	tr, cmd := session.Update(msg)
	if tr == playback.Closed {
		m.closeViewer()
		return m, nil
	}
	return m, cmd
}

// handleViewerKey handles keys while the status viewer is open.
func (m *Model) handleViewerKey(key string) (tea.Model, tea.Cmd) {
	session := m.viewer.Session()
	switch key {
	case keys.Right, "l":
		_, cmd := session.Next()
		return m, cmd
	case keys.Left, "h":
		_, cmd := session.Previous()
		return m, cmd
	case keys.Space:
		return m, session.TogglePause()
	case keys.Escape, "q":
		m.closeViewer()
		return m, nil
	}
	return m, nil
}

// ViewerSession returns the playback session on screen, or nil when the
// status viewer is closed.
func (m *Model) ViewerSession() *playback.Session {
	if !m.viewer.IsOpen() {
		return nil
	}
	return m.viewer.Session()
}
