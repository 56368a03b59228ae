package domain

import "time"

// OrderStatus enumerates garment order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order mirrors the platform's garment order resource.
type Order struct {
	ID                int64       `json:"id"`
	OrderNumber       string      `json:"order_number"`
	AppointmentID     int64       `json:"appointment_id"`
	CustomerID        int64       `json:"customer_id"`
	TailorID          int64       `json:"tailor_id"`
	GarmentType       string      `json:"garment_type"`
	FabricDetails     string      `json:"fabric_details,omitempty"`
	DesignNotes       string      `json:"design_notes,omitempty"`
	EstimatedPrice    float64     `json:"estimated_price,omitempty"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
}
