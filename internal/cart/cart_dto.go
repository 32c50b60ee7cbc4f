package cart

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	Slug           string `json:"slug" binding:"required" validate:"required"`
	Size           string `json:"size"`
	Qty            int    `json:"qty" binding:"required,min=1" validate:"required,min=1"`
	UnitPricePaise int64  `json:"unitPricePaise" binding:"min=0" validate:"min=0"`
	Title          string `json:"title"`
	ImageURL       string `json:"imageUrl"`
}

type UpdateQtyRequest struct {
	Size string `json:"size"`
	Qty  int    `json:"qty" binding:"required"`
}

type ItemKeyRequest struct {
	Size string `json:"size"`
}

// ==================== RESPONSE STRUCTS ====================

type CartItemResponse struct {
	Slug           string `json:"slug"`
	Size           string `json:"size,omitempty"`
	Qty            int    `json:"qty"`
	UnitPricePaise int64  `json:"unitPricePaise"`
	Title          string `json:"title,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	SubtotalPaise  int64  `json:"subtotalPaise"`
}

type CartDetailResponse struct {
	Items         []CartItemResponse `json:"items"`
	ItemCount     int                `json:"itemCount"`
	SubtotalPaise int64              `json:"subtotalPaise"`
}
