package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

// FabricFilter narrows fabric listings.
type FabricFilter struct {
	Type        string
	Color       string
	InStockOnly bool
}

// ListFabrics returns the fabric catalogue, optionally filtered.
func (c *Client) ListFabrics(ctx context.Context, token string, filter FabricFilter) ([]domain.Fabric, error) {
	q := url.Values{}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	if filter.Color != "" {
		q.Set("color", filter.Color)
	}
	if filter.InStockOnly {
		q.Set("in_stock", "true")
	}

	path := "/api/fabrics/"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out []domain.Fabric
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
