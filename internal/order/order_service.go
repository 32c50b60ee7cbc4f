package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-venusa-api/internal/outbox"
	"go-venusa-api/internal/pkg/apperror"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error)
	Detail(ctx context.Context, id uuid.UUID) (*OrderResponse, error)
	ListByEmail(ctx context.Context, email string, page, limit int) (*ListOrdersResponse, error)
	AttachGatewayOrder(ctx context.Context, id uuid.UUID, gatewayOrderID string) error
	ApplyPaymentCaptured(ctx context.Context, gatewayOrderID, paymentID, signature string, eventAt time.Time) error
	ApplyPaymentFailed(ctx context.Context, gatewayOrderID, paymentID string, eventAt time.Time) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	validate   *validator.Validate
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo outbox.Repository, logger *zap.Logger) Service {
	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (s *service) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "invalid order payload", 400)
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var subtotal int64
	for _, it := range req.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		subtotal += it.UnitPricePaise * int64(qty)
	}

	var addressJSON json.RawMessage
	if req.Address != nil {
		b, err := json.Marshal(req.Address)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to encode address", 500)
		}
		addressJSON = b
	}

	ord := Order{
		ID:              uuid.New(),
		OrderNumber:     generateOrderNumber(),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           req.Phone,
		FullName:        req.FullName,
		AddressSnapshot: addressJSON,
		SubtotalPaise:   subtotal,
		ShippingPaise:   req.ShippingPaise,
		TotalPaise:      subtotal + req.ShippingPaise,
		Status:          StatusCreated,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to start transaction", 500)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)
	created, err := txRepo.Create(ctx, ord)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to create order", 500)
	}

	items := make([]Item, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		item := Item{
			ID:             uuid.New(),
			OrderID:        created.ID,
			Slug:           it.Slug,
			Size:           it.Size,
			TitleSnapshot:  it.Title,
			UnitPricePaise: it.UnitPricePaise,
			Quantity:       qty,
			TotalPaise:     it.UnitPricePaise * int64(qty),
		}
		if err := txRepo.CreateItem(ctx, item); err != nil {
			return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to create order item", 500)
		}
		items = append(items, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to commit order", 500)
	}

	s.logger.Info("order created",
		zap.String("order_id", created.ID.String()),
		zap.String("order_number", created.OrderNumber),
		zap.Int64("total_paise", created.TotalPaise),
	)

	resp := toOrderResponse(created, items)
	return &resp, nil
}

func (s *service) Detail(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	ord, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load order", 500)
	}
	items, err := s.repo.GetItems(ctx, id)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load order items", 500)
	}
	resp := toOrderResponse(ord, items)
	return &resp, nil
}

func (s *service) ListByEmail(ctx context.Context, email string, page, limit int) (*ListOrdersResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	orders, total, err := s.repo.ListByEmail(ctx, strings.ToLower(strings.TrimSpace(email)), limit, (page-1)*limit)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list orders", 500)
	}
	resp := &ListOrdersResponse{Orders: make([]OrderResponse, 0, len(orders)), Total: int(total)}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o, nil))
	}
	return resp, nil
}

func (s *service) AttachGatewayOrder(ctx context.Context, id uuid.UUID, gatewayOrderID string) error {
	if err := s.repo.AttachGatewayOrder(ctx, id, gatewayOrderID); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to attach gateway order", 500)
	}
	return nil
}

// ApplyPaymentCaptured transitions an open order to paid and queues the
// ORDER_PAID outbox event in the same transaction. A capture event that
// arrives after the order already left the created state is a no-op.
func (s *service) ApplyPaymentCaptured(ctx context.Context, gatewayOrderID, paymentID, signature string, eventAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to start transaction", 500)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)
	updated, err := txRepo.MarkPaid(ctx, gatewayOrderID, paymentID, signature, toNullTime(eventAt))
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to mark order paid", 500)
	}
	if updated == 0 {
		ord, err := s.repo.GetByGatewayOrderID(ctx, gatewayOrderID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrOrderNotFound
			}
			return apperror.Wrap(err, apperror.CodeInternalError, "failed to load order", 500)
		}
		s.logger.Info("payment captured for settled order, skipping",
			zap.String("gateway_order_id", gatewayOrderID),
			zap.String("status", ord.Status),
		)
		return nil
	}

	ord, err := txRepo.GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to load order", 500)
	}

	payload, err := json.Marshal(map[string]any{
		"order_id":     ord.ID.String(),
		"order_number": ord.OrderNumber,
		"email":        ord.Email,
		"total_paise":  ord.TotalPaise,
		"payment_id":   paymentID,
	})
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to encode outbox payload", 500)
	}
	evt := outbox.Event{
		ID:            uuid.New(),
		AggregateType: "order",
		AggregateID:   ord.ID,
		EventType:     outbox.EventOrderPaid,
		Payload:       payload,
	}
	if err := s.outboxRepo.WithTx(tx).CreateEvent(ctx, evt); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to queue outbox event", 500)
	}

	if err := tx.Commit(); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to commit payment", 500)
	}

	s.logger.Info("order marked paid",
		zap.String("order_id", ord.ID.String()),
		zap.String("payment_id", paymentID),
	)
	return nil
}

// ApplyPaymentFailed is idempotent the same way: only an open order moves
// to failed, anything else is left alone.
func (s *service) ApplyPaymentFailed(ctx context.Context, gatewayOrderID, paymentID string, eventAt time.Time) error {
	updated, err := s.repo.MarkFailed(ctx, gatewayOrderID, toNullTime(eventAt))
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to mark order failed", 500)
	}
	if updated == 0 {
		s.logger.Info("payment failed for settled order, skipping",
			zap.String("gateway_order_id", gatewayOrderID),
		)
		return nil
	}
	s.logger.Info("order marked failed",
		zap.String("gateway_order_id", gatewayOrderID),
		zap.String("payment_id", paymentID),
	)
	return nil
}

func generateOrderNumber() string {
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("VNS-%d-%s", time.Now().Unix(), suffix)
}

func toNullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func toOrderResponse(o Order, items []Item) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		Email:         o.Email,
		Phone:         o.Phone,
		FullName:      o.FullName,
		Address:       o.AddressSnapshot,
		SubtotalPaise: o.SubtotalPaise,
		ShippingPaise: o.ShippingPaise,
		TotalPaise:    o.TotalPaise,
		Status:        o.Status,
		PlacedAt:      o.PlacedAt,
	}
	if o.GatewayOrderID.Valid {
		resp.GatewayOrderID = o.GatewayOrderID.String
	}
	if o.PaidAt.Valid {
		t := o.PaidAt.Time
		resp.PaidAt = &t
	}
	for _, it := range items {
		resp.Items = append(resp.Items, ItemResponse{
			Slug:           it.Slug,
			Size:           it.Size,
			Title:          it.TitleSnapshot,
			UnitPricePaise: it.UnitPricePaise,
			Quantity:       it.Quantity,
			TotalPaise:     it.TotalPaise,
		})
	}
	return resp
}
