package status

import (
	"sync"

	"github.com/google/uuid"
	perrors "github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
)

// Store is the ordered, newest-first collection of statuses.
// The only mutation is Prepend; statuses are never edited or removed.
type Store struct {
	mu       sync.RWMutex
	statuses []Status
}

// NewStore creates a store seeded with the given statuses (newest first).
func NewStore(seed []Status) *Store {
	s := &Store{statuses: make([]Status, len(seed))}
	copy(s.statuses, seed)
	return s
}

// Len returns the number of statuses.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.statuses)
}

// All returns a snapshot of the statuses in display order.
func (s *Store) All() []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Status, len(s.statuses))
	copy(out, s.statuses)
	return out
}

// Get returns the status at index i.
func (s *Store) Get(i int) (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.statuses) {
		return Status{}, perrors.StatusIndexOutOfRange("status.Get", i, len(s.statuses))
	}
	return s.statuses[i], nil
}

// Prepend validates st and inserts it at the front.
func (s *Store) Prepend(st Status) error {
	if err := st.Validate(); err != nil {
		return perrors.E(perrors.Op("status.Prepend"), perrors.KindInvalid, err)
	}
	s.mu.Lock()
	s.statuses = append([]Status{st}, s.statuses...)
	n := len(s.statuses)
	s.mu.Unlock()

	logger.WithComponent("status").Debug("status prepended", "id", st.ID, "count", n)
	return nil
}

// Publish builds a status for the local user and prepends it.
// The author is always the current user and the label is "just now";
// authorName overrides the display name when non-empty.
func (s *Store) Publish(content, background, text, authorName string) (Status, error) {
	if authorName == "" {
		authorName = CurrentUserName
	}
	st := Status{
		ID:              uuid.NewString(),
		AuthorID:        CurrentUserID,
		AuthorName:      authorName,
		Content:         content,
		CreatedAtLabel:  JustNowLabel,
		BackgroundColor: background,
		TextColor:       text,
	}
	if err := s.Prepend(st); err != nil {
		return Status{}, err
	}
	return st, nil
}
