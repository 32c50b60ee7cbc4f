package product

// upstreamProduct mirrors the catalog service payload. Prices arrive in
// major units (rupees) as a decimal string.
type upstreamProduct struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
	InStock     *bool    `json:"in_stock"`
}

type upstreamListResponse struct {
	Products []upstreamProduct `json:"products"`
	Total    int               `json:"total"`
}

type ProductResponse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	PricePaise  int64    `json:"price_paise"`
	Category    string   `json:"category,omitempty"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
	InStock     bool     `json:"in_stock"`
}

type ListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}
