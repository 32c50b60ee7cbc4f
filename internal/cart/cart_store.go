package cart

import (
	"context"
	"encoding/json"
	"sync"

	"go-venusa-api/internal/bus"
	"go-venusa-api/internal/kv"

	"go.uber.org/zap"
)

const (
	keyPrefix     = "cart:v1:"
	schemaVersion = 1
)

// Line is one (product, size) entry. UnitPricePaise and the display fields
// are snapshotted at add time and never re-fetched, so they can go stale
// against the catalog; that is accepted behavior.
type Line struct {
	Slug           string `json:"slug"`
	Size           string `json:"size,omitempty"`
	Qty            int    `json:"qty"`
	UnitPricePaise int64  `json:"unitPricePaise"`
	Title          string `json:"title,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

type envelope struct {
	Version int    `json:"version"`
	Lines   []Line `json:"lines"`
}

// Store holds one profile's cart. The in-memory list is authoritative for
// the session; persistence to the key-value store is best-effort and a
// failed write is swallowed. After every mutation the new item count is
// published on the bus, and writes to the same key by other instances are
// folded back in by a resync watcher (last write wins, no merge).
type Store struct {
	mu    sync.Mutex
	lines []Line

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
	s.lines = s.load(ctx)
	s.watch(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []Line {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if err != kv.ErrNotFound {
			s.logger.Warn("cart load failed", zap.Error(err))
		}
		return nil
	}
	return decodeLines(raw, s.logger)
}

func decodeLines(raw []byte, logger *zap.Logger) []Line {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Warn("cart payload malformed, starting empty", zap.Error(err))
		return nil
	}
	if env.Version != schemaVersion {
		logger.Warn("cart payload has unknown schema version, starting empty",
			zap.Int("version", env.Version))
		return nil
	}
	return env.Lines
}

func (s *Store) watch(ctx context.Context) {
	changes, cancel := s.kv.OnExternalChange(ctx, s.key)
	s.stopWatch = cancel
	go func() {
		for raw := range changes {
			s.mu.Lock()
			if raw == nil {
				s.lines = nil
			} else {
				s.lines = decodeLines(raw, s.logger)
			}
			count := s.count()
			s.mu.Unlock()
			s.publish(count)
		}
	}()
}

// Close stops the resync watcher. The persisted state stays behind.
func (s *Store) Close() {
	if s.stopWatch != nil {
		s.stopWatch()
	}
}

// Add merges into an existing (slug, size) line or inserts a new line at the
// front. Quantities below 1 are treated as 1.
func (s *Store) Add(ctx context.Context, line Line) {
	if line.Qty < 1 {
		line.Qty = 1
	}

	s.mu.Lock()
	if i := s.find(line.Slug, line.Size); i >= 0 {
		s.lines[i].Qty += line.Qty
	} else {
		s.lines = append([]Line{line}, s.lines...)
	}
	s.mu.Unlock()

	s.persistAndNotify(ctx)
}

// SetQty replaces the matching line's quantity, clamped to a floor of 1.
// Absent lines are a no-op.
func (s *Store) SetQty(ctx context.Context, slug, size string, qty int) {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	i := s.find(slug, size)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines[i].Qty = qty
	s.mu.Unlock()

	s.persistAndNotify(ctx)
}

func (s *Store) Increment(ctx context.Context, slug, size string) {
	s.mu.Lock()
	i := s.find(slug, size)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines[i].Qty++
	s.mu.Unlock()

	s.persistAndNotify(ctx)
}

// Decrement floors at 1; removing a line is an explicit Remove.
func (s *Store) Decrement(ctx context.Context, slug, size string) {
	s.mu.Lock()
	i := s.find(slug, size)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	if s.lines[i].Qty > 1 {
		s.lines[i].Qty--
	}
	s.mu.Unlock()

	s.persistAndNotify(ctx)
}

func (s *Store) Remove(ctx context.Context, slug, size string) {
	s.mu.Lock()
	i := s.find(slug, size)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.mu.Unlock()

	s.persistAndNotify(ctx)
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()

	s.persistAndNotify(ctx)
}

func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count is the sum of quantities across lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count()
}

// Subtotal is Σ unitPrice×qty in paise.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, l := range s.lines {
		total += l.UnitPricePaise * int64(l.Qty)
	}
	return total
}

func (s *Store) find(slug, size string) int {
	for i, l := range s.lines {
		if l.Slug == slug && l.Size == size {
			return i
		}
	}
	return -1
}

func (s *Store) count() int {
	n := 0
	for _, l := range s.lines {
		n += l.Qty
	}
	return n
}

func (s *Store) persistAndNotify(ctx context.Context) {
	s.mu.Lock()
	raw, err := json.Marshal(envelope{Version: schemaVersion, Lines: s.lines})
	count := s.count()
	s.mu.Unlock()

	if err == nil {
		err = s.kv.Set(ctx, s.key, raw)
	}
	if err != nil {
		// In-memory state stays authoritative for the session.
		s.logger.Warn("cart persist failed", zap.Error(err))
	}

	s.publish(count)
}

func (s *Store) publish(count int) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(bus.Event{
		Topic:     bus.TopicCartUpdated,
		ProfileID: s.profileID,
		Count:     count,
	})
}
