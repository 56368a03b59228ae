package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

// OrderCreateRequest starts a garment order from a completed appointment.
type OrderCreateRequest struct {
	AppointmentID     int64      `json:"appointment_id"`
	GarmentType       string     `json:"garment_type"`
	FabricDetails     string     `json:"fabric_details,omitempty"`
	DesignNotes       string     `json:"design_notes,omitempty"`
	EstimatedPrice    float64    `json:"estimated_price,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
}

// CreateOrder creates an order (tailor/admin only upstream).
func (c *Client) CreateOrder(ctx context.Context, token string, req OrderCreateRequest) (*domain.Order, error) {
	var out domain.Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders/", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrders returns orders visible to the caller.
func (c *Client) ListOrders(ctx context.Context, token string, status domain.OrderStatus) ([]domain.Order, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}

	path := "/api/orders/"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrder returns one order.
func (c *Client) GetOrder(ctx context.Context, token string, id int64) (*domain.Order, error) {
	var out domain.Order
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
