package wishlist

// ==================== RESPONSE STRUCTS ====================

type WishlistResponse struct {
	Slugs []string `json:"slugs"`
	Count int      `json:"count"`
}

type ToggleResponse struct {
	Slug   string   `json:"slug"`
	InList bool     `json:"inList"`
	Slugs  []string `json:"slugs"`
	Count  int      `json:"count"`
}
