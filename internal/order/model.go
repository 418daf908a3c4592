package order

import (
	"time"

	"github.com/MikeMC777/verduleria-ecom/internal/money"
)

const StatusPending = "Pending"

type Order struct {
	ID                string       `json:"id"`
	CustomerID        string       `json:"customerId"`
	Items             []Item       `json:"items"`
	TotalAmount       money.Amount `json:"totalAmount" swaggertype:"number"`
	DeliveryAddress   string       `json:"deliveryAddress"`
	Phone             string       `json:"phone"`
	Status            string       `json:"status"`
	CreatedAt         time.Time    `json:"createdAt"`
	EstimatedDelivery time.Time    `json:"estimatedDelivery"`
}

// Item is one ordered line. Name and Price are the catalog values captured
// when the order was validated.
type Item struct {
	VegetableID string       `json:"vegetableId"`
	Name        string       `json:"name,omitempty"`
	Price       money.Amount `json:"price" swaggertype:"number"`
	Quantity    int          `json:"quantity"`
}

func (it Item) Amount() money.Amount { return money.Line(it.Price, it.Quantity) }
