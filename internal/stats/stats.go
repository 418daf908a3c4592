// Package stats aggregates the admin dashboard figures.
package stats

import (
	"context"

	"github.com/MikeMC777/verduleria-ecom/internal/customer"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

// Summary is the dashboard payload.
// swagger:model StatsSummary
type Summary struct {
	TotalOrders    int          `json:"totalOrders"`
	TotalCustomers int          `json:"totalCustomers"`
	TotalRevenue   money.Amount `json:"totalRevenue" swaggertype:"number"`
	PendingOrders  int          `json:"pendingOrders"`
	TotalProducts  int          `json:"totalProducts"`
}

type Service struct {
	vegetables vegetable.Repository
	customers  customer.Repository
	orders     order.Repository
}

func NewService(v vegetable.Repository, c customer.Repository, o order.Repository) *Service {
	return &Service{vegetables: v, customers: c, orders: o}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	vegetables, err := s.vegetables.List(ctx)
	if err != nil {
		return nil, err
	}
	out := Compute(orders)
	out.TotalCustomers = len(customers)
	out.TotalProducts = len(vegetables)
	return &out, nil
}

// Compute fills the order-derived figures. Revenue counts every order
// whatever its status.
func Compute(orders []order.Order) Summary {
	s := Summary{TotalOrders: len(orders), TotalRevenue: money.Zero}
	for _, o := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalAmount)
		if o.Status == order.StatusPending {
			s.PendingOrders++
		}
	}
	return s
}
