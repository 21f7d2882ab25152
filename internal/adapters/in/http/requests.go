package http

// CreateOrderRequest is the body for POST /api/v1/orders.
type CreateOrderRequest struct {
	ShippingAddress string                   `json:"shipping_address"`
	DeliveryMethod  string                   `json:"delivery_method"`
	Items           []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one requested order line.
type CreateOrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderResponse is the body returned on successful checkout.
type CreateOrderResponse struct {
	OrderID     int64  `json:"order_id"`
	TotalAmount string `json:"total_amount"`
}

// CancelOrderResponse is the body returned when an order is cancelled.
type CancelOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

// UpdateOrderStatusRequest is the body for PUT /api/v1/admin/orders/:id/status.
// Location and description are optional; warehouse defaults apply.
type UpdateOrderStatusRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateOrderStatusResponse is the body returned after an operator transition.
// The tracking number is present once the order has been shipped.
type UpdateOrderStatusResponse struct {
	OrderID        int64  `json:"order_id"`
	Status         string `json:"status"`
	TrackingNumber string `json:"tracking_number,omitempty"`
}

// OpenReturnRequest is the body for POST /api/v1/returns.
type OpenReturnRequest struct {
	OrderID  int64                   `json:"order_id"`
	Reason   string                  `json:"reason"`
	Comments string                  `json:"comments,omitempty"`
	Items    []OpenReturnItemRequest `json:"items"`
}

// OpenReturnItemRequest is one requested return line. Condition defaults to
// "used" when omitted.
type OpenReturnItemRequest struct {
	OrderItemID int64  `json:"order_item_id"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason,omitempty"`
	Condition   string `json:"condition,omitempty"`
}

// OpenReturnResponse is the body returned when a return request is opened.
type OpenReturnResponse struct {
	ReturnID     int64  `json:"return_id"`
	RefundAmount string `json:"refund_amount"`
}

// UpdateReturnStatusRequest is the body for PUT /api/v1/admin/returns/:id/status.
type UpdateReturnStatusRequest struct {
	Status   string `json:"status"`
	Comments string `json:"comments,omitempty"`
}
