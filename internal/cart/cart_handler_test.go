package cart_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-venusa-api/internal/cart"
)

// ==================== FAKE SERVICE ====================

type fakeCartService struct {
	DetailFn     func(ctx context.Context, profileID string) (cart.CartDetailResponse, error)
	CountFn      func(ctx context.Context, profileID string) (int, error)
	AddItemFn    func(ctx context.Context, profileID string, req cart.AddItemRequest) (cart.CartDetailResponse, error)
	UpdateQtyFn  func(ctx context.Context, profileID, slug string, req cart.UpdateQtyRequest) (cart.CartDetailResponse, error)
	IncrementFn  func(ctx context.Context, profileID, slug, size string) (cart.CartDetailResponse, error)
	DecrementFn  func(ctx context.Context, profileID, slug, size string) (cart.CartDetailResponse, error)
	DeleteItemFn func(ctx context.Context, profileID, slug, size string) (cart.CartDetailResponse, error)
	ClearFn      func(ctx context.Context, profileID string) error
}

func (f *fakeCartService) Detail(ctx context.Context, profileID string) (cart.CartDetailResponse, error) {
	return f.DetailFn(ctx, profileID)
}
func (f *fakeCartService) Count(ctx context.Context, profileID string) (int, error) {
	return f.CountFn(ctx, profileID)
}
func (f *fakeCartService) AddItem(ctx context.Context, profileID string, req cart.AddItemRequest) (cart.CartDetailResponse, error) {
	return f.AddItemFn(ctx, profileID, req)
}
func (f *fakeCartService) UpdateQty(ctx context.Context, profileID, slug string, req cart.UpdateQtyRequest) (cart.CartDetailResponse, error) {
	return f.UpdateQtyFn(ctx, profileID, slug, req)
}
func (f *fakeCartService) Increment(ctx context.Context, profileID, slug, size string) (cart.CartDetailResponse, error) {
	return f.IncrementFn(ctx, profileID, slug, size)
}
func (f *fakeCartService) Decrement(ctx context.Context, profileID, slug, size string) (cart.CartDetailResponse, error) {
	return f.DecrementFn(ctx, profileID, slug, size)
}
func (f *fakeCartService) DeleteItem(ctx context.Context, profileID, slug, size string) (cart.CartDetailResponse, error) {
	return f.DeleteItemFn(ctx, profileID, slug, size)
}
func (f *fakeCartService) Clear(ctx context.Context, profileID string) error {
	return f.ClearFn(ctx, profileID)
}

// ==================== HELPER FUNCTIONS ====================

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// profileWrapper mimics what ProfileMiddleware puts on the context.
func profileWrapper(profileID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("profile_id", profileID)
		handler(c)
	}
}

// ==================== TEST CASES ====================

func TestCartHandler_Detail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{
			DetailFn: func(ctx context.Context, profileID string) (cart.CartDetailResponse, error) {
				assert.Equal(t, "profile-123", profileID)
				return cart.CartDetailResponse{
					Items: []cart.CartItemResponse{
						{Slug: "linen-shirt", Size: "M", Qty: 2, UnitPricePaise: 149900, SubtotalPaise: 299800},
					},
					ItemCount:     2,
					SubtotalPaise: 299800,
				}, nil
			},
		}

		ctrl := cart.NewHandler(svc)
		r := setupTestRouter()
		r.GET("/carts", profileWrapper("profile-123", ctrl.Detail))

		req := httptest.NewRequest(http.MethodGet, "/carts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"linen-shirt"`)
		assert.Contains(t, w.Body.String(), `"subtotalPaise":299800`)
	})
}

func TestCartHandler_Count(t *testing.T) {
	t.Run("success_get_count", func(t *testing.T) {
		svc := &fakeCartService{
			CountFn: func(ctx context.Context, profileID string) (int, error) {
				return 5, nil
			},
		}

		ctrl := cart.NewHandler(svc)
		r := setupTestRouter()
		r.GET("/carts/count", profileWrapper("profile-123", ctrl.Count))

		req := httptest.NewRequest(http.MethodGet, "/carts/count", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":5`)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success_add_item", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, profileID string, req cart.AddItemRequest) (cart.CartDetailResponse, error) {
				assert.Equal(t, "linen-shirt", req.Slug)
				assert.Equal(t, 2, req.Qty)
				return cart.CartDetailResponse{ItemCount: 2}, nil
			},
		}

		ctrl := cart.NewHandler(svc)
		r := setupTestRouter()
		r.POST("/carts/items", profileWrapper("profile-1", ctrl.AddItem))

		body := `{"slug":"linen-shirt","size":"M","qty":2,"unitPricePaise":149900,"title":"Linen Shirt"}`
		req := httptest.NewRequest(http.MethodPost, "/carts/items", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("bad_request_invalid_json", func(t *testing.T) {
		ctrl := cart.NewHandler(&fakeCartService{})
		r := setupTestRouter()
		r.POST("/carts/items", profileWrapper("profile-1", ctrl.AddItem))

		req := httptest.NewRequest(http.MethodPost, "/carts/items", strings.NewReader(`{"qty":"invalid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid_item_is_bad_request", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, profileID string, req cart.AddItemRequest) (cart.CartDetailResponse, error) {
				return cart.CartDetailResponse{}, cart.ErrInvalidItem
			},
		}

		ctrl := cart.NewHandler(svc)
		r := setupTestRouter()
		r.POST("/carts/items", profileWrapper("profile-1", ctrl.AddItem))

		req := httptest.NewRequest(http.MethodPost, "/carts/items", strings.NewReader(`{"slug":"ghost-item","qty":99}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_UpdateQty(t *testing.T) {
	t.Run("success_update_qty", func(t *testing.T) {
		svc := &fakeCartService{
			UpdateQtyFn: func(ctx context.Context, profileID, slug string, req cart.UpdateQtyRequest) (cart.CartDetailResponse, error) {
				assert.Equal(t, "linen-shirt", slug)
				assert.Equal(t, 3, req.Qty)
				return cart.CartDetailResponse{ItemCount: 3}, nil
			},
		}

		ctrl := cart.NewHandler(svc)
		r := setupTestRouter()
		r.PUT("/carts/items/:slug", profileWrapper("profile-1", ctrl.UpdateQty))

		body := `{"qty":3,"size":"M"}`
		req := httptest.NewRequest(http.MethodPut, "/carts/items/linen-shirt", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCartHandler_IncrementDecrement(t *testing.T) {
	svc := &fakeCartService{
		IncrementFn: func(ctx context.Context, profileID, slug, size string) (cart.CartDetailResponse, error) {
			assert.Equal(t, "M", size)
			return cart.CartDetailResponse{}, nil
		},
		DecrementFn: func(ctx context.Context, profileID, slug, size string) (cart.CartDetailResponse, error) {
			return cart.CartDetailResponse{}, nil
		},
	}

	ctrl := cart.NewHandler(svc)
	r := setupTestRouter()
	r.POST("/carts/items/:slug/increment", profileWrapper("profile-1", ctrl.Increment))
	r.POST("/carts/items/:slug/decrement", profileWrapper("profile-1", ctrl.Decrement))

	t.Run("success_increment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/carts/items/linen-shirt/increment?size=M", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("success_decrement", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/carts/items/linen-shirt/decrement", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCartHandler_Delete(t *testing.T) {
	svc := &fakeCartService{
		DeleteItemFn: func(ctx context.Context, profileID, slug, size string) (cart.CartDetailResponse, error) {
			return cart.CartDetailResponse{}, nil
		},
		ClearFn: func(ctx context.Context, profileID string) error { return nil },
	}

	ctrl := cart.NewHandler(svc)
	r := setupTestRouter()
	r.DELETE("/carts/items/:slug", profileWrapper("profile-1", ctrl.DeleteItem))
	r.DELETE("/carts", profileWrapper("profile-1", ctrl.Clear))

	t.Run("success_delete_item", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/carts/items/linen-shirt?size=M", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("success_clear_cart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/carts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
