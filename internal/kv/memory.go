package kv

import (
	"context"
	"errors"
	"sync"
)

// MemoryStore is an in-process Store used in tests and as a fallback when no
// Redis is configured. SimulateExternalChange stands in for another writer
// touching the same key.
type MemoryStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	watchers map[string][]chan []byte
	failSet  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:     make(map[string][]byte),
		watchers: make(map[string][]chan []byte),
	}
}

// FailWrites makes every subsequent Set return an error, standing in for a
// storage quota failure.
func (s *MemoryStore) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSet = fail
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	return cp, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSet {
		return errors.New("kv: write refused")
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) OnExternalChange(_ context.Context, key string) (<-chan []byte, func()) {
	ch := make(chan []byte, 4)

	s.mu.Lock()
	s.watchers[key] = append(s.watchers[key], ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		chans := s.watchers[key]
		for i, c := range chans {
			if c == ch {
				s.watchers[key] = append(chans[:i], chans[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

// SimulateExternalChange writes the key and notifies watchers, as if a
// different instance had performed the write.
func (s *MemoryStore) SimulateExternalChange(key string, value []byte) {
	s.mu.Lock()
	s.data[key] = value
	watchers := append([]chan []byte(nil), s.watchers[key]...)
	s.mu.Unlock()

	for _, ch := range watchers {
		select {
		case ch <- value:
		default:
		}
	}
}
