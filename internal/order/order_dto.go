package order

import (
	"encoding/json"
	"time"
)

type ItemRequest struct {
	Slug           string `json:"slug" validate:"required"`
	Size           string `json:"size"`
	Title          string `json:"title"`
	UnitPricePaise int64  `json:"unit_price_paise" validate:"min=0"`
	Quantity       int    `json:"quantity" validate:"min=1"`
}

type CreateOrderRequest struct {
	Email         string        `json:"email" validate:"required,email"`
	Phone         string        `json:"phone"`
	FullName      string        `json:"full_name"`
	Address       *AddressInput `json:"address"`
	ShippingPaise int64         `json:"shipping_paise" validate:"min=0"`
	Items         []ItemRequest `json:"items" validate:"required,min=1,dive"`
}

type AddressInput struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type ItemResponse struct {
	Slug           string `json:"slug"`
	Size           string `json:"size,omitempty"`
	Title          string `json:"title"`
	UnitPricePaise int64  `json:"unit_price_paise"`
	Quantity       int    `json:"quantity"`
	TotalPaise     int64  `json:"total_paise"`
}

type OrderResponse struct {
	ID             string          `json:"id"`
	OrderNumber    string          `json:"order_number"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	FullName       string          `json:"full_name,omitempty"`
	Address        json.RawMessage `json:"address,omitempty"`
	SubtotalPaise  int64           `json:"subtotal_paise"`
	ShippingPaise  int64           `json:"shipping_paise"`
	TotalPaise     int64           `json:"total_paise"`
	Status         string          `json:"status"`
	GatewayOrderID string          `json:"gateway_order_id,omitempty"`
	PlacedAt       time.Time       `json:"placed_at"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	Items          []ItemResponse  `json:"items,omitempty"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}
