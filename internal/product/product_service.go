package product

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	listCacheKey         = "product:list:v1"
	detailCacheKeyPrefix = "product:detail:v1:"
	cacheTTL             = 5 * time.Minute

	placeholderImage = "/images/placeholder.png"
)

type Service interface {
	List(ctx context.Context, category string) (*ListResponse, error)
	Detail(ctx context.Context, slug string) (*ProductResponse, error)
}

type service struct {
	client Client
	cache  *redis.Client
	logger *zap.Logger
}

// NewService wires the catalog client with an optional Redis cache. A nil
// cache disables caching.
func NewService(client Client, cache *redis.Client, logger *zap.Logger) Service {
	return &service{client: client, cache: cache, logger: logger}
}

// List is a read-through cache over the catalog. Cache errors are treated
// as misses so a flaky Redis never takes the storefront down with it.
func (s *service) List(ctx context.Context, category string) (*ListResponse, error) {
	key := listCacheKey
	if category != "" {
		key += ":" + category
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var resp ListResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	raw, err := s.client.List(ctx, category)
	if err != nil {
		return nil, err
	}

	resp := &ListResponse{Products: make([]ProductResponse, 0, len(raw)), Total: len(raw)}
	for _, p := range raw {
		resp.Products = append(resp.Products, normalize(p))
	}

	s.cacheSet(ctx, key, resp)
	return resp, nil
}

func (s *service) Detail(ctx context.Context, slug string) (*ProductResponse, error) {
	key := detailCacheKeyPrefix + slug

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var resp ProductResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	raw, err := s.client.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := normalize(*raw)
	s.cacheSet(ctx, key, resp)
	return &resp, nil
}

func (s *service) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, b, cacheTTL).Err(); err != nil {
		s.logger.Warn("product cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// normalize fills the gaps the catalog leaves: a missing image gets the
// placeholder, missing sizes become an empty slice rather than null, and
// the major-unit price string becomes paise.
func normalize(p upstreamProduct) ProductResponse {
	images := p.Images
	if len(images) == 0 {
		images = []string{placeholderImage}
	}
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	inStock := true
	if p.InStock != nil {
		inStock = *p.InStock
	}
	return ProductResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		PricePaise:  toPaise(p.Price),
		Category:    p.Category,
		Images:      images,
		Sizes:       sizes,
		InStock:     inStock,
	}
}

func toPaise(major string) int64 {
	d, err := decimal.NewFromString(major)
	if err != nil {
		return 0
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
