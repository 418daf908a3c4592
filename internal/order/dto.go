package order

// PlaceOrderItem payload of an order line.
// swagger:model PlaceOrderItem
type PlaceOrderItem struct {
	VegetableID string `json:"vegetableId" example:"veg-4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity    int    `json:"quantity"    example:"2"`
}

// PlaceOrderRequest payload of order placement. Prices are never taken from
// the client.
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	CustomerID      string           `json:"customerId"      example:"cust-b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Items           []PlaceOrderItem `json:"items"`
	DeliveryAddress string           `json:"deliveryAddress" example:"12 Market Road"`
	Phone           string           `json:"phone"           example:"+919876543210"`
}

// UpdateStatusRequest payload of the admin status change.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"Delivered"`
}
