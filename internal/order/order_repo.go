package order

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, o Order) (Order, error)
	CreateItem(ctx context.Context, item Item) error

	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]Item, error)
	ListByEmail(ctx context.Context, email string, limit, offset int) ([]Order, int64, error)

	AttachGatewayOrder(ctx context.Context, id uuid.UUID, gatewayOrderID string) error

	// MarkPaid and MarkFailed only touch orders still in the created
	// state and report how many rows changed, so redelivered or
	// out-of-order webhook events fall through as no-ops.
	MarkPaid(ctx context.Context, gatewayOrderID, paymentID, signature string, eventAt sql.NullTime) (int64, error)
	MarkFailed(ctx context.Context, gatewayOrderID string, eventAt sql.NullTime) (int64, error)
}

type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type repository struct {
	db queryer
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: tx}
}

const orderColumns = `
	id, order_number, email, phone, full_name, address_snapshot,
	subtotal_paise, shipping_paise, total_paise, status,
	gateway_order_id, gateway_payment_id, gateway_signature,
	last_event_at, placed_at, paid_at
`

func (r *repository) Create(ctx context.Context, o Order) (Order, error) {
	const query = `
		INSERT INTO orders (
			id, order_number, email, phone, full_name, address_snapshot,
			subtotal_paise, shipping_paise, total_paise, status, placed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING ` + orderColumns

	row := r.db.QueryRowContext(ctx, query,
		o.ID, o.OrderNumber, o.Email, o.Phone, o.FullName, o.AddressSnapshot,
		o.SubtotalPaise, o.ShippingPaise, o.TotalPaise, o.Status,
	)
	return scanOrder(row)
}

func (r *repository) CreateItem(ctx context.Context, item Item) error {
	const query = `
		INSERT INTO order_items (
			id, order_id, slug, size, title_snapshot,
			unit_price_paise, quantity, total_paise
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.OrderID, item.Slug, item.Size, item.TitleSnapshot,
		item.UnitPricePaise, item.Quantity, item.TotalPaise,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 LIMIT 1`
	return scanOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *repository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Order, error) {
	// gateway_order_id carries a unique index.
	query := `SELECT ` + orderColumns + ` FROM orders WHERE gateway_order_id = $1 LIMIT 1`
	return scanOrder(r.db.QueryRowContext(ctx, query, gatewayOrderID))
}

func (r *repository) GetItems(ctx context.Context, orderID uuid.UUID) ([]Item, error) {
	const query = `
		SELECT id, order_id, slug, size, title_snapshot,
		       unit_price_paise, quantity, total_paise
		FROM order_items
		WHERE order_id = $1
		ORDER BY title_snapshot
	`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.Slug, &it.Size, &it.TitleSnapshot,
			&it.UnitPricePaise, &it.Quantity, &it.TotalPaise,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) ListByEmail(ctx context.Context, email string, limit, offset int) ([]Order, int64, error) {
	query := `
		SELECT ` + orderColumns + `, COUNT(*) OVER() AS total_count
		FROM orders
		WHERE email = $1
		ORDER BY placed_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, email, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		orders []Order
		total  int64
	)
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.Email, &o.Phone, &o.FullName, &o.AddressSnapshot,
			&o.SubtotalPaise, &o.ShippingPaise, &o.TotalPaise, &o.Status,
			&o.GatewayOrderID, &o.GatewayPaymentID, &o.GatewaySignature,
			&o.LastEventAt, &o.PlacedAt, &o.PaidAt, &total,
		); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *repository) AttachGatewayOrder(ctx context.Context, id uuid.UUID, gatewayOrderID string) error {
	const query = `
		UPDATE orders
		SET gateway_order_id = $2
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, gatewayOrderID)
	return err
}

func (r *repository) MarkPaid(ctx context.Context, gatewayOrderID, paymentID, signature string, eventAt sql.NullTime) (int64, error) {
	const query = `
		UPDATE orders
		SET status = 'paid',
		    gateway_payment_id = $2,
		    gateway_signature = $3,
		    last_event_at = $4,
		    paid_at = NOW()
		WHERE gateway_order_id = $1 AND status = 'created'
	`
	res, err := r.db.ExecContext(ctx, query, gatewayOrderID, paymentID, signature, eventAt)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) MarkFailed(ctx context.Context, gatewayOrderID string, eventAt sql.NullTime) (int64, error) {
	const query = `
		UPDATE orders
		SET status = 'failed',
		    last_event_at = $2
		WHERE gateway_order_id = $1 AND status = 'created'
	`
	res, err := r.db.ExecContext(ctx, query, gatewayOrderID, eventAt)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanOrder(row *sql.Row) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Email, &o.Phone, &o.FullName, &o.AddressSnapshot,
		&o.SubtotalPaise, &o.ShippingPaise, &o.TotalPaise, &o.Status,
		&o.GatewayOrderID, &o.GatewayPaymentID, &o.GatewaySignature,
		&o.LastEventAt, &o.PlacedAt, &o.PaidAt,
	)
	return o, err
}
