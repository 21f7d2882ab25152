// Package queries contains read-only projections over the database.
// Implements the Query side of the CQRS architecture: handlers read with raw
// SQL and return flat response structs, bypassing the aggregates entirely.
package queries

import "time"

// OrderItemResponse is one projected order line with the product name joined
// in from the catalog.
type OrderItemResponse struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Subtotal    string `json:"subtotal"`
}

// DeliveryUpdateResponse is one projected delivery trail record.
type DeliveryUpdateResponse struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// OrderResponse is the full order projection: the order row, its items with
// product names, and its delivery trail oldest first.
type OrderResponse struct {
	ID                int64                    `json:"id"`
	UserID            int64                    `json:"user_id"`
	Status            string                   `json:"status"`
	StatusDisplay     string                   `json:"status_display"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
	ShippingAddress   string                   `json:"shipping_address"`
	DeliveryMethod    string                   `json:"delivery_method"`
	TotalAmount       string                   `json:"total_amount"`
	TrackingNumber    string                   `json:"tracking_number,omitempty"`
	CurrentLocation   string                   `json:"current_location,omitempty"`
	EstimatedDelivery *time.Time               `json:"estimated_delivery,omitempty"`
	Items             []OrderItemResponse      `json:"items"`
	DeliveryUpdates   []DeliveryUpdateResponse `json:"delivery_updates"`
}

// ReturnItemResponse is one projected return line with the product name
// resolved through the referenced order item.
type ReturnItemResponse struct {
	ID          int64  `json:"id"`
	OrderItemID int64  `json:"order_item_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason,omitempty"`
	Condition   string `json:"condition"`
}

// ReturnResponse is the full return projection.
type ReturnResponse struct {
	ID           int64                `json:"id"`
	OrderID      int64                `json:"order_id"`
	UserID       int64                `json:"user_id"`
	Status       string               `json:"status"`
	Reason       string               `json:"reason"`
	Comments     string               `json:"comments,omitempty"`
	RefundAmount string               `json:"refund_amount"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	Items        []ReturnItemResponse `json:"items"`
}

// ProductResponse is the catalog projection used by the storefront.
type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
