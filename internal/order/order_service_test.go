package order_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	ordermock "go-venusa-api/internal/mock/order"
	outboxmock "go-venusa-api/internal/mock/outbox"
	"go-venusa-api/internal/order"
	"go-venusa-api/internal/outbox"
)

func newService(t *testing.T) (order.Service, sqlmock.Sqlmock, *ordermock.MockRepository, *outboxmock.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := ordermock.NewMockRepository(ctrl)
	outboxRepo := outboxmock.NewMockRepository(ctrl)
	svc := order.NewService(db, repo, outboxRepo, zap.NewNop())
	return svc, dbMock, repo, outboxRepo
}

func TestOrder_Create(t *testing.T) {
	svc, dbMock, repo, _ := newService(t)
	ctx := context.Background()

	req := order.CreateOrderRequest{
		Email: "Shopper@Example.com",
		Items: []order.ItemRequest{
			{Slug: "linen-shirt", Size: "M", Title: "Linen Shirt", UnitPricePaise: 149900, Quantity: 2},
			{Slug: "tee", Title: "Tee", UnitPricePaise: 49900, Quantity: 1},
		},
	}

	t.Run("success", func(t *testing.T) {
		dbMock.ExpectBegin()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, o order.Order) (order.Order, error) {
				assert.Equal(t, "shopper@example.com", o.Email)
				assert.Equal(t, int64(349700), o.SubtotalPaise)
				assert.Equal(t, int64(349700), o.TotalPaise)
				assert.Equal(t, order.StatusCreated, o.Status)
				o.PlacedAt = time.Now()
				return o, nil
			})
		repo.EXPECT().CreateItem(ctx, gomock.Any()).Return(nil).Times(2)

		dbMock.ExpectCommit()

		resp, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Len(t, resp.Items, 2)
		assert.Equal(t, int64(349700), resp.TotalPaise)
		assert.NotEmpty(t, resp.OrderNumber)
	})

	t.Run("item_failure_rolls_back", func(t *testing.T) {
		dbMock.ExpectBegin()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, o order.Order) (order.Order, error) { return o, nil })
		repo.EXPECT().CreateItem(ctx, gomock.Any()).Return(errors.New("constraint violation"))

		dbMock.ExpectRollback()

		_, err := svc.Create(ctx, req)
		assert.Error(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("no_items", func(t *testing.T) {
		_, err := svc.Create(ctx, order.CreateOrderRequest{Email: "shopper@example.com"})
		assert.Error(t, err)
	})
}

func TestOrder_ApplyPaymentCaptured(t *testing.T) {
	svc, dbMock, repo, outboxRepo := newService(t)
	ctx := context.Background()
	eventAt := time.Unix(1700000000, 0)

	t.Run("marks_paid_and_queues_outbox_event", func(t *testing.T) {
		orderID := uuid.New()

		dbMock.ExpectBegin()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			MarkPaid(ctx, "order_gw123", "pay_abc", "sig", sql.NullTime{Time: eventAt, Valid: true}).
			Return(int64(1), nil)
		repo.EXPECT().GetByGatewayOrderID(ctx, "order_gw123").Return(order.Order{
			ID:          orderID,
			OrderNumber: "VNS-1700000000-AB12",
			Email:       "shopper@example.com",
			TotalPaise:  299800,
			Status:      order.StatusPaid,
		}, nil)

		outboxRepo.EXPECT().WithTx(gomock.Any()).Return(outboxRepo)
		outboxRepo.EXPECT().CreateEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, evt outbox.Event) error {
				assert.Equal(t, outbox.EventOrderPaid, evt.EventType)
				assert.Equal(t, orderID, evt.AggregateID)

				var payload map[string]any
				require.NoError(t, json.Unmarshal(evt.Payload, &payload))
				assert.Equal(t, "shopper@example.com", payload["email"])
				assert.Equal(t, "pay_abc", payload["payment_id"])
				return nil
			})

		dbMock.ExpectCommit()

		err := svc.ApplyPaymentCaptured(ctx, "order_gw123", "pay_abc", "sig", eventAt)
		require.NoError(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("settled_order_is_noop", func(t *testing.T) {
		dbMock.ExpectBegin()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			MarkPaid(ctx, "order_gw123", "pay_dup", "sig", gomock.Any()).
			Return(int64(0), nil)
		repo.EXPECT().GetByGatewayOrderID(ctx, "order_gw123").Return(order.Order{
			Status: order.StatusPaid,
		}, nil)

		dbMock.ExpectRollback()

		err := svc.ApplyPaymentCaptured(ctx, "order_gw123", "pay_dup", "sig", eventAt)
		assert.NoError(t, err, "redelivered capture must not fail")
	})

	t.Run("unknown_gateway_order", func(t *testing.T) {
		dbMock.ExpectBegin()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			MarkPaid(ctx, "order_missing", "pay_x", "sig", gomock.Any()).
			Return(int64(0), nil)
		repo.EXPECT().GetByGatewayOrderID(ctx, "order_missing").Return(order.Order{}, sql.ErrNoRows)

		dbMock.ExpectRollback()

		err := svc.ApplyPaymentCaptured(ctx, "order_missing", "pay_x", "sig", eventAt)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestOrder_ApplyPaymentFailed(t *testing.T) {
	svc, _, repo, _ := newService(t)
	ctx := context.Background()
	eventAt := time.Unix(1700000000, 0)

	t.Run("marks_failed", func(t *testing.T) {
		repo.EXPECT().
			MarkFailed(ctx, "order_gw123", sql.NullTime{Time: eventAt, Valid: true}).
			Return(int64(1), nil)

		err := svc.ApplyPaymentFailed(ctx, "order_gw123", "pay_abc", eventAt)
		assert.NoError(t, err)
	})

	t.Run("failure_after_paid_is_noop", func(t *testing.T) {
		repo.EXPECT().
			MarkFailed(ctx, "order_gw123", gomock.Any()).
			Return(int64(0), nil)

		err := svc.ApplyPaymentFailed(ctx, "order_gw123", "pay_late", eventAt)
		assert.NoError(t, err, "late failure event after settle is ignored")
	})
}

func TestOrder_Detail(t *testing.T) {
	svc, _, repo, _ := newService(t)
	ctx := context.Background()

	t.Run("not_found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().GetByID(ctx, id).Return(order.Order{}, sql.ErrNoRows)

		_, err := svc.Detail(ctx, id)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().GetByID(ctx, id).Return(order.Order{
			ID:          id,
			OrderNumber: "VNS-1700000000-AB12",
			Status:      order.StatusPaid,
			TotalPaise:  299800,
		}, nil)
		repo.EXPECT().GetItems(ctx, id).Return([]order.Item{
			{Slug: "linen-shirt", Quantity: 2, UnitPricePaise: 149900, TotalPaise: 299800},
		}, nil)

		resp, err := svc.Detail(ctx, id)
		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, order.StatusPaid, resp.Status)
	})
}
