package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-venusa-api/internal/cart"
	"go-venusa-api/internal/checkout"
	cartmock "go-venusa-api/internal/mock/cart"
	ordermock "go-venusa-api/internal/mock/order"
	paymentmock "go-venusa-api/internal/mock/payment"
	"go-venusa-api/internal/order"
	"go-venusa-api/internal/payment"
)

func testCartDetail() cart.CartDetailResponse {
	return cart.CartDetailResponse{
		Items: []cart.CartItemResponse{
			{Slug: "linen-shirt", Size: "M", Qty: 2, UnitPricePaise: 149900, Title: "Linen Shirt"},
		},
		ItemCount:     2,
		SubtotalPaise: 299800,
	}
}

func TestCheckout_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	carts := cartmock.NewMockService(ctrl)
	orders := ordermock.NewMockService(ctrl)
	gateway := paymentmock.NewMockGateway(ctrl)

	svc := checkout.NewService(carts, orders, gateway, zap.NewNop())
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		orderID := uuid.New()

		carts.EXPECT().Detail(ctx, "profile-1").Return(testCartDetail(), nil)
		orders.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req order.CreateOrderRequest) (*order.OrderResponse, error) {
				assert.Equal(t, "shopper@example.com", req.Email)
				require.Len(t, req.Items, 1)
				assert.Equal(t, "linen-shirt", req.Items[0].Slug)
				assert.Equal(t, 2, req.Items[0].Quantity)
				return &order.OrderResponse{
					ID:          orderID.String(),
					OrderNumber: "VNS-1700000000-AB12",
					TotalPaise:  299800,
					Status:      order.StatusCreated,
				}, nil
			})
		gateway.EXPECT().CreateOrder(ctx, int64(299800), "INR", "VNS-1700000000-AB12").
			Return(&payment.GatewayOrder{ID: "order_gw123", Amount: 299800, Currency: "INR"}, nil)
		orders.EXPECT().AttachGatewayOrder(ctx, orderID, "order_gw123").Return(nil)
		gateway.EXPECT().KeyID().Return("rzp_test_key")

		res, err := svc.Start(ctx, "profile-1", checkout.StartRequest{Email: "shopper@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "rzp_test_key", res.Key)
		assert.Equal(t, int64(299800), res.AmountPaise)
		assert.Equal(t, "order_gw123", res.GatewayOrderID)
		assert.Equal(t, orderID.String(), res.OrderID)
	})

	t.Run("empty_cart", func(t *testing.T) {
		carts.EXPECT().Detail(ctx, "profile-1").Return(cart.CartDetailResponse{}, nil)

		_, err := svc.Start(ctx, "profile-1", checkout.StartRequest{Email: "shopper@example.com"})
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	})

	t.Run("invalid_email", func(t *testing.T) {
		_, err := svc.Start(ctx, "profile-1", checkout.StartRequest{Email: "not-an-email"})
		assert.Error(t, err)
	})

	t.Run("backend_failure_leaves_cart_alone", func(t *testing.T) {
		carts.EXPECT().Detail(ctx, "profile-1").Return(testCartDetail(), nil)
		orders.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("db down"))
		// no Clear expectation: a failed start must not touch the cart

		_, err := svc.Start(ctx, "profile-1", checkout.StartRequest{Email: "shopper@example.com"})
		assert.Error(t, err)
	})

	t.Run("gateway_failure_leaves_cart_alone", func(t *testing.T) {
		orderID := uuid.New()

		carts.EXPECT().Detail(ctx, "profile-1").Return(testCartDetail(), nil)
		orders.EXPECT().Create(ctx, gomock.Any()).Return(&order.OrderResponse{
			ID:          orderID.String(),
			OrderNumber: "VNS-1700000001-CD34",
			TotalPaise:  299800,
		}, nil)
		gateway.EXPECT().CreateOrder(ctx, int64(299800), "INR", "VNS-1700000001-CD34").
			Return(nil, errors.New("gateway unreachable"))

		_, err := svc.Start(ctx, "profile-1", checkout.StartRequest{Email: "shopper@example.com"})
		assert.Error(t, err)
	})
}

func TestCheckout_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	carts := cartmock.NewMockService(ctrl)
	orders := ordermock.NewMockService(ctrl)
	gateway := paymentmock.NewMockGateway(ctrl)

	svc := checkout.NewService(carts, orders, gateway, zap.NewNop())
	ctx := context.Background()

	t.Run("clears_cart", func(t *testing.T) {
		orderID := uuid.New()

		orders.EXPECT().Detail(ctx, orderID).Return(&order.OrderResponse{
			ID:          orderID.String(),
			OrderNumber: "VNS-1700000002-EF56",
			Status:      order.StatusPaid,
		}, nil)
		carts.EXPECT().Clear(ctx, "profile-1").Return(nil)

		res, err := svc.Confirm(ctx, "profile-1", checkout.ConfirmRequest{OrderID: orderID.String()})
		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, res.Status)
	})

	t.Run("cart_clear_failure_still_succeeds", func(t *testing.T) {
		orderID := uuid.New()

		orders.EXPECT().Detail(ctx, orderID).Return(&order.OrderResponse{
			ID:          orderID.String(),
			OrderNumber: "VNS-1700000003-GH78",
			Status:      order.StatusPaid,
		}, nil)
		carts.EXPECT().Clear(ctx, "profile-1").Return(errors.New("redis down"))

		_, err := svc.Confirm(ctx, "profile-1", checkout.ConfirmRequest{OrderID: orderID.String()})
		assert.NoError(t, err)
	})

	t.Run("invalid_order_id", func(t *testing.T) {
		_, err := svc.Confirm(ctx, "profile-1", checkout.ConfirmRequest{OrderID: "nope"})
		assert.ErrorIs(t, err, checkout.ErrInvalidRequest)
	})
}
