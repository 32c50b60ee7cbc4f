package cart

import (
	"context"
	"sync"

	"go-venusa-api/internal/bus"
	"go-venusa-api/internal/kv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, profileID string) (CartDetailResponse, error)
	Count(ctx context.Context, profileID string) (int, error)

	AddItem(ctx context.Context, profileID string, req AddItemRequest) (CartDetailResponse, error)
	UpdateQty(ctx context.Context, profileID, slug string, req UpdateQtyRequest) (CartDetailResponse, error)
	Increment(ctx context.Context, profileID, slug, size string) (CartDetailResponse, error)
	Decrement(ctx context.Context, profileID, slug, size string) (CartDetailResponse, error)

	DeleteItem(ctx context.Context, profileID, slug, size string) (CartDetailResponse, error)
	Clear(ctx context.Context, profileID string) error
}

type service struct {
	mu     sync.Mutex
	stores map[string]*Store

	kv       kv.Store
	bus      *bus.Bus
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(store kv.Store, b *bus.Bus, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		stores:   make(map[string]*Store),
		kv:       store,
		bus:      b,
		validate: validator.New(),
		logger:   logger,
	}
}

// getStore lazily materializes the profile's store, loading whatever state
// the key-value store holds for it.
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

func (s *service) Detail(ctx context.Context, profileID string) (CartDetailResponse, error) {
	return mapDetail(s.getStore(ctx, profileID)), nil
}

func (s *service) Count(ctx context.Context, profileID string) (int, error) {
	return s.getStore(ctx, profileID).Count(), nil
}

func (s *service) AddItem(ctx context.Context, profileID string, req AddItemRequest) (CartDetailResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartDetailResponse{}, ErrInvalidItem
	}

	st := s.getStore(ctx, profileID)
	st.Add(ctx, Line{
		Slug:           req.Slug,
		Size:           req.Size,
		Qty:            req.Qty,
		UnitPricePaise: req.UnitPricePaise,
		Title:          req.Title,
		ImageURL:       req.ImageURL,
	})
	return mapDetail(st), nil
}

func (s *service) UpdateQty(ctx context.Context, profileID, slug string, req UpdateQtyRequest) (CartDetailResponse, error) {
	st := s.getStore(ctx, profileID)
	st.SetQty(ctx, slug, req.Size, req.Qty)
	return mapDetail(st), nil
}

func (s *service) Increment(ctx context.Context, profileID, slug, size string) (CartDetailResponse, error) {
	st := s.getStore(ctx, profileID)
	st.Increment(ctx, slug, size)
	return mapDetail(st), nil
}

func (s *service) Decrement(ctx context.Context, profileID, slug, size string) (CartDetailResponse, error) {
	st := s.getStore(ctx, profileID)
	st.Decrement(ctx, slug, size)
	return mapDetail(st), nil
}

func (s *service) DeleteItem(ctx context.Context, profileID, slug, size string) (CartDetailResponse, error) {
	st := s.getStore(ctx, profileID)
	st.Remove(ctx, slug, size)
	return mapDetail(st), nil
}

func (s *service) Clear(ctx context.Context, profileID string) error {
	s.getStore(ctx, profileID).Clear(ctx)
	return nil
}

func mapDetail(st *Store) CartDetailResponse {
	lines := st.Lines()
	items := make([]CartItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartItemResponse{
			Slug:           l.Slug,
			Size:           l.Size,
			Qty:            l.Qty,
			UnitPricePaise: l.UnitPricePaise,
			Title:          l.Title,
			ImageURL:       l.ImageURL,
			SubtotalPaise:  l.UnitPricePaise * int64(l.Qty),
		})
	}
	return CartDetailResponse{
		Items:         items,
		ItemCount:     st.Count(),
		SubtotalPaise: st.Subtotal(),
	}
}
