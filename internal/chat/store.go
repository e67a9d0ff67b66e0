package chat

import (
	"strings"
	"sync"

	"github.com/samber/lo"
	perrors "github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
)

// Store is the ordered list of chats.
type Store struct {
	mu    sync.RWMutex
	chats []Chat
}

// NewStore creates a store holding copies of seed.
func NewStore(seed []Chat) *Store {
	s := &Store{chats: make([]Chat, len(seed))}
	for i, c := range seed {
		s.chats[i] = clone(c)
	}
	return s
}

func clone(c Chat) Chat {
	c.Messages = append([]Message(nil), c.Messages...)
	return c
}

func (s *Store) indexOf(id string) int {
	_, idx, ok := lo.FindIndexOf(s.chats, func(c Chat) bool { return c.ID == id })
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of chats.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chats)
}

// All returns a copy of every chat in display order.
func (s *Store) All() []Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Map(s.chats, func(c Chat, _ int) Chat { return clone(c) })
}

// Get returns the chat with the given id.
func (s *Store) Get(id string) (Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Chat{}, perrors.ChatNotFound(id)
	}
	return clone(s.chats[i]), nil
}

// Filter returns the chats whose name or last message contains query,
// case-insensitively. An empty query matches everything.
func (s *Store) Filter(query string) []Chat {
	q := strings.ToLower(strings.TrimSpace(query))
	all := s.All()
	if q == "" {
		return all
	}
	return lo.Filter(all, func(c Chat, _ int) bool {
		if strings.Contains(strings.ToLower(c.Name), q) {
			return true
		}
		last, ok := c.Last()
		return ok && strings.Contains(strings.ToLower(last.Text), q)
	})
}

// OfKind narrows chats to the given kind. An empty kind keeps them all.
func OfKind(chats []Chat, kind Kind) []Chat {
	if kind == "" {
		return chats
	}
	return lo.Filter(chats, func(c Chat, _ int) bool { return c.Kind == kind })
}

// Append adds m to the end of the chat's thread.
func (s *Store) Append(chatID string, m Message) error {
	s.mu.Lock()
	i := s.indexOf(chatID)
	if i < 0 {
		s.mu.Unlock()
		return perrors.ChatNotFound(chatID)
	}
	s.chats[i].Messages = append(s.chats[i].Messages, m)
	n := len(s.chats[i].Messages)
	s.mu.Unlock()

	logger.WithChat(chatID).Debug("message appended", "id", m.ID, "sticker", m.IsSticker, "count", n)
	return nil
}

// MarkRead clears the unread badge.
func (s *Store) MarkRead(chatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(chatID)
	if i < 0 {
		return perrors.ChatNotFound(chatID)
	}
	s.chats[i].Unread = 0
	return nil
}

// MarkUnread bumps the unread badge by one.
func (s *Store) MarkUnread(chatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(chatID)
	if i < 0 {
		return perrors.ChatNotFound(chatID)
	}
	s.chats[i].Unread++
	return nil
}

// LastMessage returns the newest message of the chat. ok is false when the
// chat is unknown or has no messages.
func (s *Store) LastMessage(chatID string) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(chatID)
	if i < 0 {
		return Message{}, false
	}
	return s.chats[i].Last()
}

// TotalUnread sums the unread badges of every chat.
func (s *Store) TotalUnread() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.SumBy(s.chats, func(c Chat) int { return c.Unread })
}
