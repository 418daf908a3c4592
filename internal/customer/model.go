package customer

import (
	"time"

	"github.com/MikeMC777/verduleria-ecom/internal/money"
)

type Customer struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address"`
	CreatedAt   time.Time    `json:"createdAt"`
	TotalOrders int          `json:"totalOrders"`
	TotalSpent  money.Amount `json:"totalSpent"`
}

// RegisterRequest payload of registration.
// swagger:model RegisterCustomerRequest
type RegisterRequest struct {
	Name    string `json:"name"    example:"Asha Patel"`
	Email   string `json:"email"   example:"asha@example.com"`
	Phone   string `json:"phone"   example:"+919876543210"`
	Address string `json:"address" example:"12 Market Road"`
}

// UpdateRequest payload of profile update. Counters are not writable.
// swagger:model UpdateCustomerRequest
type UpdateRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (r UpdateRequest) Apply(c *Customer) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
}

// RecordPurchase bumps the running order statistics.
func (c *Customer) RecordPurchase(total money.Amount) {
	c.TotalOrders++
	c.TotalSpent = c.TotalSpent.Add(total)
}
