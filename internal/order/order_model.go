package order

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Status lifecycle: created moves to paid or failed. Both paid and
// failed are terminal; a webhook event arriving after the order reached
// a terminal state is ignored.
const (
	StatusCreated = "created"
	StatusPaid    = "paid"
	StatusFailed  = "failed"
)

type Order struct {
	ID               uuid.UUID
	OrderNumber      string
	Email            string
	Phone            string
	FullName         string
	AddressSnapshot  json.RawMessage
	SubtotalPaise    int64
	ShippingPaise    int64
	TotalPaise       int64
	Status           string
	GatewayOrderID   sql.NullString
	GatewayPaymentID sql.NullString
	GatewaySignature sql.NullString
	LastEventAt      sql.NullTime
	PlacedAt         time.Time
	PaidAt           sql.NullTime
}

type Item struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	Slug           string
	Size           string
	TitleSnapshot  string
	UnitPricePaise int64
	Quantity       int
	TotalPaise     int64
}
