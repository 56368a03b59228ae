package domain

import "time"

// Fabric is an inventory item customers browse when placing orders.
type Fabric struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Color         string    `json:"color,omitempty"`
	Pattern       string    `json:"pattern,omitempty"`
	PricePerMeter float64   `json:"price_per_meter"`
	ImageURL      string    `json:"image_url,omitempty"`
	Description   string    `json:"description,omitempty"`
	InStock       bool      `json:"in_stock"`
	CreatedAt     time.Time `json:"created_at"`
}
