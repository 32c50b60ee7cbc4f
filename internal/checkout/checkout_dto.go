package checkout

type StartRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`

	Address *AddressRequest `json:"address"`
}

type AddressRequest struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// StartResponse carries everything the payment widget needs to open.
type StartResponse struct {
	Key            string `json:"key"`
	AmountPaise    int64  `json:"amount"`
	Currency       string `json:"currency"`
	GatewayOrderID string `json:"gateway_order_id"`
	OrderID        string `json:"order_id"`
	OrderNumber    string `json:"order_number"`
}

type ConfirmRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

type ConfirmResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
}
