package checkout

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-venusa-api/internal/cart"
	"go-venusa-api/internal/order"
	"go-venusa-api/internal/payment"
	"go-venusa-api/internal/pkg/apperror"
)

const gatewayCurrency = "INR"

type Service interface {
	Start(ctx context.Context, profileID string, req StartRequest) (*StartResponse, error)
	Confirm(ctx context.Context, profileID string, req ConfirmRequest) (*ConfirmResponse, error)
}

type service struct {
	carts    cart.Service
	orders   order.Service
	gateway  payment.Gateway
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(carts cart.Service, orders order.Service, gateway payment.Gateway, logger *zap.Logger) Service {
	return &service{
		carts:    carts,
		orders:   orders,
		gateway:  gateway,
		validate: validator.New(),
		logger:   logger,
	}
}

// Start snapshots the cart into a backend order and opens a matching order
// with the payment gateway. The cart is left untouched: it only empties on
// Confirm, so a failed or abandoned checkout costs the shopper nothing.
func (s *service) Start(ctx context.Context, profileID string, req StartRequest) (*StartResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "invalid checkout payload", 400)
	}

	detail, err := s.carts.Detail(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if len(detail.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]order.ItemRequest, 0, len(detail.Items))
	for _, line := range detail.Items {
		items = append(items, order.ItemRequest{
			Slug:           line.Slug,
			Size:           line.Size,
			Title:          line.Title,
			UnitPricePaise: line.UnitPricePaise,
			Quantity:       line.Qty,
		})
	}

	orderReq := order.CreateOrderRequest{
		Email:    req.Email,
		Phone:    req.Phone,
		FullName: fullNameOrFallback(req.FullName, req.Email),
		Address:  toOrderAddress(req.Address),
		Items:    items,
	}

	created, err := s.orders.Create(ctx, orderReq)
	if err != nil {
		return nil, err
	}

	gwOrder, err := s.gateway.CreateOrder(ctx, created.TotalPaise, gatewayCurrency, created.OrderNumber)
	if err != nil {
		s.logger.Error("gateway order creation failed",
			zap.String("order_id", created.ID),
			zap.Error(err),
		)
		return nil, err
	}

	orderID, err := uuid.Parse(created.ID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "invalid order id", 500)
	}
	if err := s.orders.AttachGatewayOrder(ctx, orderID, gwOrder.ID); err != nil {
		return nil, err
	}

	s.logger.Info("checkout started",
		zap.String("order_id", created.ID),
		zap.String("gateway_order_id", gwOrder.ID),
		zap.Int64("amount_paise", gwOrder.Amount),
	)

	return &StartResponse{
		Key:            s.gateway.KeyID(),
		AmountPaise:    gwOrder.Amount,
		Currency:       gwOrder.Currency,
		GatewayOrderID: gwOrder.ID,
		OrderID:        created.ID,
		OrderNumber:    created.OrderNumber,
	}, nil
}

// Confirm is the only path that empties the cart.
func (s *service) Confirm(ctx context.Context, profileID string, req ConfirmRequest) (*ConfirmResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "invalid confirm payload", 400)
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, ErrInvalidRequest
	}
	ord, err := s.orders.Detail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, profileID); err != nil {
		// the order stands either way, a stale cart is the lesser problem
		s.logger.Warn("cart clear after checkout failed",
			zap.String("profile_id", profileID),
			zap.Error(err),
		)
	}

	return &ConfirmResponse{
		OrderID:     ord.ID,
		OrderNumber: ord.OrderNumber,
		Status:      ord.Status,
	}, nil
}

func fullNameOrFallback(fullName, email string) string {
	if fullName != "" {
		return fullName
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func toOrderAddress(a *AddressRequest) *order.AddressInput {
	if a == nil {
		return &order.AddressInput{
			Line1:      "Online Order via Razorpay",
			City:       "Auto",
			State:      "Auto",
			PostalCode: "000000",
			Country:    "India",
		}
	}
	return &order.AddressInput{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
