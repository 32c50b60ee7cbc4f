package wishlist

import (
	"context"
	"strings"
	"sync"

	"go-venusa-api/internal/bus"
	"go-venusa-api/internal/kv"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, profileID string) (WishlistResponse, error)
	Add(ctx context.Context, profileID, slug string) (WishlistResponse, error)
	Remove(ctx context.Context, profileID, slug string) (WishlistResponse, error)
	Toggle(ctx context.Context, profileID, slug string) (ToggleResponse, error)
	Clear(ctx context.Context, profileID string) error
}

type service struct {
	mu     sync.Mutex
	stores map[string]*Store

	kv     kv.Store
	bus    *bus.Bus
	logger *zap.Logger
}

func NewService(store kv.Store, b *bus.Bus, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		stores: make(map[string]*Store),
		kv:     store,
		bus:    b,
		logger: logger,
	}
}

func (s *service) getStore(ctx context.Context, profileID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stores[profileID]; ok {
		return st
	}
	st := NewStore(ctx, profileID, s.kv, s.bus, s.logger)
	s.stores[profileID] = st
	return st
}

func (s *service) List(ctx context.Context, profileID string) (WishlistResponse, error) {
	return mapList(s.getStore(ctx, profileID)), nil
}

func (s *service) Add(ctx context.Context, profileID, slug string) (WishlistResponse, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return WishlistResponse{}, ErrInvalidSlug
	}
	st := s.getStore(ctx, profileID)
	st.Add(ctx, slug)
	return mapList(st), nil
}

func (s *service) Remove(ctx context.Context, profileID, slug string) (WishlistResponse, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return WishlistResponse{}, ErrInvalidSlug
	}
	st := s.getStore(ctx, profileID)
	st.Remove(ctx, slug)
	return mapList(st), nil
}

func (s *service) Toggle(ctx context.Context, profileID, slug string) (ToggleResponse, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ToggleResponse{}, ErrInvalidSlug
	}
	st := s.getStore(ctx, profileID)
	added := st.Toggle(ctx, slug)
	return ToggleResponse{
		Slug:   slug,
		InList: added,
		Slugs:  st.Slugs(),
		Count:  st.Count(),
	}, nil
}

func (s *service) Clear(ctx context.Context, profileID string) error {
	s.getStore(ctx, profileID).Clear(ctx)
	return nil
}

func mapList(st *Store) WishlistResponse {
	return WishlistResponse{
		Slugs: st.Slugs(),
		Count: st.Count(),
	}
}
