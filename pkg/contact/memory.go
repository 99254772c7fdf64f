package contact

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/showcase/pkg/errors"
)

// MemoryStore keeps messages in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	messages map[string]Message
	closed   bool

	// Now stamps inserted messages; tests can replace it.
	Now func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		messages: make(map[string]Message),
		Now:      time.Now,
	}
}

func (s *MemoryStore) Insert(_ context.Context, m Message) (*Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.New(errors.ErrCodeStoreUnavailable, "memory store is closed")
	}
	if _, dup := s.messages[m.ID]; dup {
		return nil, errors.New(errors.ErrCodeSubmissionFailed, "duplicate message id %s", m.ID)
	}
	m.Timestamp = s.Now().UTC()
	m.Read = false
	s.messages[m.ID] = m
	return &m, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

// Len returns the number of stored messages.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Close(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var _ Store = (*MemoryStore)(nil)
