package product

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The client and normalization work on unexported upstream types, so these
// tests live inside the package.

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("category") == "shirts" {
			w.Write([]byte(`{"products":[{"id":"p1","slug":"linen-shirt","title":"Linen Shirt","price":"1499.00","category":"shirts","images":["/images/linen.jpg"],"sizes":["S","M","L"]}],"total":1}`))
			return
		}
		w.Write([]byte(`{"products":[
			{"id":"p1","slug":"linen-shirt","title":"Linen Shirt","price":"1499.00","category":"shirts","images":["/images/linen.jpg"],"sizes":["S","M","L"]},
			{"id":"p2","slug":"tee","title":"Tee","price":"499.50","in_stock":false}
		],"total":2}`))
	})
	mux.HandleFunc("/products/linen-shirt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"p1","slug":"linen-shirt","title":"Linen Shirt","price":"1499.00","category":"shirts","images":["/images/linen.jpg"],"sizes":["S","M","L"]}`))
	})
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestProduct_List(t *testing.T) {
	srv := newCatalogServer(t)
	svc := NewService(NewClient(srv.URL), nil, zap.NewNop())
	ctx := context.Background()

	t.Run("normalizes_catalog_payload", func(t *testing.T) {
		resp, err := svc.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, resp.Products, 2)

		shirt := resp.Products[0]
		assert.Equal(t, int64(149900), shirt.PricePaise)
		assert.Equal(t, []string{"S", "M", "L"}, shirt.Sizes)
		assert.True(t, shirt.InStock, "missing in_stock defaults to available")

		tee := resp.Products[1]
		assert.Equal(t, int64(49950), tee.PricePaise)
		assert.Equal(t, []string{placeholderImage}, tee.Images)
		assert.Equal(t, []string{}, tee.Sizes, "missing sizes must be an empty slice, not null")
		assert.False(t, tee.InStock)
	})

	t.Run("category_filter", func(t *testing.T) {
		resp, err := svc.List(ctx, "shirts")
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "linen-shirt", resp.Products[0].Slug)
	})
}

func TestProduct_Detail(t *testing.T) {
	srv := newCatalogServer(t)
	svc := NewService(NewClient(srv.URL), nil, zap.NewNop())
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Detail(ctx, "linen-shirt")
		require.NoError(t, err)
		assert.Equal(t, "Linen Shirt", resp.Title)
		assert.Equal(t, int64(149900), resp.PricePaise)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.Detail(ctx, "ghost")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProduct_CatalogDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	svc := NewService(NewClient(srv.URL), nil, zap.NewNop())
	_, err := svc.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrCatalogUnavailable)

	unreachable := NewService(NewClient("http://127.0.0.1:1"), nil, zap.NewNop())
	_, err = unreachable.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestToPaise(t *testing.T) {
	assert.Equal(t, int64(149900), toPaise("1499.00"))
	assert.Equal(t, int64(49950), toPaise("499.50"))
	assert.Equal(t, int64(100), toPaise("1"))
	assert.Equal(t, int64(0), toPaise("not-a-price"))
}
