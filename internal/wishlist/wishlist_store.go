package wishlist

import (
	"context"
	"encoding/json"
	"sync"

	"go-venusa-api/internal/bus"
	"go-venusa-api/internal/kv"

	"go.uber.org/zap"
)

const (
	keyPrefix     = "wishlist:v1:"
	schemaVersion = 1
)

type envelope struct {
	Version int      `json:"version"`
	Slugs   []string `json:"slugs"`
}

// Store holds one profile's wishlist: an ordered set of product slugs,
// most-recently-added first. Persistence and notification semantics match
// the cart store: best-effort writes, bus publish after every mutation,
// last-write-wins resync when another instance touches the same key.
type Store struct {
	mu    sync.Mutex
	slugs []string

	profileID string
	key       string
	kv        kv.Store
	bus       *bus.Bus
	logger    *zap.Logger

	stopWatch func()
}

func NewStore(ctx context.Context, profileID string, store kv.Store, b *bus.Bus, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		profileID: profileID,
		key:       keyPrefix + profileID,
		kv:        store,
		bus:       b,
		logger:    logger.With(zap.String("profile_id", profileID)),
	}
	s.slugs = s.load(ctx)
	s.watch(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []string {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if err != kv.ErrNotFound {
			s.logger.Warn("wishlist load failed", zap.Error(err))
		}
		return nil
	}
	return decodeSlugs(raw, s.logger)
}

func decodeSlugs(raw []byte, logger *zap.Logger) []string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Warn("wishlist payload malformed, starting empty", zap.Error(err))
		return nil
	}
	if env.Version != schemaVersion {
		logger.Warn("wishlist payload has unknown schema version, starting empty",
			zap.Int("version", env.Version))
		return nil
	}
	return env.Slugs
}

func (s *Store) watch(ctx context.Context) {
	changes, cancel := s.kv.OnExternalChange(ctx, s.key)
	s.stopWatch = cancel
	go func() {
		for raw := range changes {
			s.mu.Lock()
			if raw == nil {
				s.slugs = nil
			} else {
				s.slugs = decodeSlugs(raw, s.logger)
			}
			count := len(s.slugs)
			s.mu.Unlock()
			s.publish(count)
		}
	}()
}

func (s *Store) Close() {
	if s.stopWatch != nil {
		s.stopWatch()
	}
}

// Add is idempotent: a slug already present keeps its position, nothing is
// reordered. New slugs go to the front.
func (s *Store) Add(ctx context.Context, slug string) {
	s.mu.Lock()
	if s.contains(slug) {
		s.mu.Unlock()
		// Still persisted + published: the original treats duplicate
		// add as a state write, not an error.
		s.persistAndNotify(ctx)
		return
	}
	s.slugs = append([]string{slug}, s.slugs...)
	s.mu.Unlock()

	s.persistAndNotify(ctx)
}

func (s *Store) Remove(ctx context.Context, slug string) {
	s.mu.Lock()
	kept := s.slugs[:0]
	for _, v := range s.slugs {
		if v != slug {
			kept = append(kept, v)
		}
	}
	s.slugs = kept
	s.mu.Unlock()

	s.persistAndNotify(ctx)
}

// Toggle adds the slug if absent and removes it if present. Returns whether
// the slug is in the wishlist afterwards.
func (s *Store) Toggle(ctx context.Context, slug string) bool {
	s.mu.Lock()
	present := s.contains(slug)
	s.mu.Unlock()

	if present {
		s.Remove(ctx, slug)
		return false
	}
	s.Add(ctx, slug)
	return true
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.slugs = nil
	s.mu.Unlock()

	s.persistAndNotify(ctx)
}

func (s *Store) Slugs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.slugs))
	copy(out, s.slugs)
	return out
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slugs)
}

func (s *Store) Has(slug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contains(slug)
}

func (s *Store) contains(slug string) bool {
	for _, v := range s.slugs {
		if v == slug {
			return true
		}
	}
	return false
}

func (s *Store) persistAndNotify(ctx context.Context) {
	s.mu.Lock()
	raw, err := json.Marshal(envelope{Version: schemaVersion, Slugs: s.slugs})
	count := len(s.slugs)
	s.mu.Unlock()

	if err == nil {
		err = s.kv.Set(ctx, s.key, raw)
	}
	if err != nil {
		s.logger.Warn("wishlist persist failed", zap.Error(err))
	}

	s.publish(count)
}

func (s *Store) publish(count int) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(bus.Event{
		Topic:     bus.TopicWishlistUpdated,
		ProfileID: s.profileID,
		Count:     count,
	})
}
