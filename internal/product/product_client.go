package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client interface {
	List(ctx context.Context, category string) ([]upstreamProduct, error)
	GetBySlug(ctx context.Context, slug string) (*upstreamProduct, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpClient) List(ctx context.Context, category string) ([]upstreamProduct, error) {
	endpoint := c.baseURL + "/products"
	if category != "" {
		endpoint += "?category=" + url.QueryEscape(category)
	}

	var list upstreamListResponse
	if err := c.getJSON(ctx, endpoint, &list); err != nil {
		return nil, err
	}
	return list.Products, nil
}

func (c *httpClient) GetBySlug(ctx context.Context, slug string) (*upstreamProduct, error) {
	endpoint := c.baseURL + "/products/" + url.PathEscape(slug)

	var p upstreamProduct
	if err := c.getJSON(ctx, endpoint, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *httpClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return ErrCatalogUnavailable
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrProductNotFound
	case res.StatusCode != http.StatusOK:
		return fmt.Errorf("catalog returned %d: %w", res.StatusCode, ErrCatalogUnavailable)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
