// Package checkout places orders: it validates a request against the
// catalog, reserves stock, records the order and updates the customer's
// statistics as one all-or-nothing step.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

// DeliveryWindow is added to the placement time to get estimatedDelivery.
const DeliveryWindow = 48 * time.Hour

var (
	ErrUnknownVegetable  = errors.New("unknown vegetable")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Service struct {
	ledger    Ledger
	publisher order.Publisher
	now       func() time.Time
}

func NewService(ledger Ledger, publisher order.Publisher) *Service {
	if publisher == nil {
		publisher = order.NoopPublisher{}
	}
	return &Service{ledger: ledger, publisher: publisher, now: time.Now}
}

// PlaceOrder validates every line before touching anything. Prices come
// from the catalog as read inside the ledger, never from the request.
func (s *Service) PlaceOrder(ctx context.Context, req order.PlaceOrderRequest) (*order.Order, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var placed *order.Order
	err := s.ledger.Do(ctx, func(tx Tx) error {
		resolved := make(map[string]*vegetable.Vegetable, len(req.Items))
		var ids []string
		for _, in := range req.Items {
			if _, ok := resolved[in.VegetableID]; ok {
				continue
			}
			v, err := tx.Vegetable(ctx, in.VegetableID)
			if errors.Is(err, vegetable.ErrNotFound) {
				return &apperr.Error{
					Kind: apperr.ErrNotFound,
					Msg:  fmt.Sprintf("Vegetable %s not found", in.VegetableID),
					Err:  ErrUnknownVegetable,
				}
			}
			if err != nil {
				return err
			}
			resolved[in.VegetableID] = v
			ids = append(ids, in.VegetableID)
		}

		// Each line is checked against what is left so the running sum never
		// exceeds the stock and cannot overflow.
		requested := make(map[string]int, len(ids))
		for _, in := range req.Items {
			v := resolved[in.VegetableID]
			if in.Quantity > v.Stock-requested[in.VegetableID] {
				return &apperr.Error{
					Kind: apperr.ErrValidation,
					Msg:  fmt.Sprintf("Insufficient stock for %s", v.Name),
					Err:  ErrInsufficientStock,
				}
			}
			requested[in.VegetableID] += in.Quantity
		}

		items := make([]order.Item, 0, len(req.Items))
		total := money.Zero
		for _, in := range req.Items {
			v := resolved[in.VegetableID]
			it := order.Item{VegetableID: v.ID, Name: v.Name, Price: v.Price, Quantity: in.Quantity}
			total = total.Add(it.Amount())
			items = append(items, it)
		}

		for _, id := range ids {
			if err := tx.SetStock(ctx, id, resolved[id].Stock-requested[id]); err != nil {
				return err
			}
		}

		now := s.now().UTC()
		o := &order.Order{
			ID:                order.NewID(),
			CustomerID:        strings.TrimSpace(req.CustomerID),
			Items:             items,
			TotalAmount:       total,
			DeliveryAddress:   req.DeliveryAddress,
			Phone:             req.Phone,
			Status:            order.StatusPending,
			CreatedAt:         now,
			EstimatedDelivery: now.Add(DeliveryWindow),
		}
		if err := tx.AppendOrder(ctx, o); err != nil {
			return err
		}
		known, err := tx.RecordPurchase(ctx, o.CustomerID, total)
		if err != nil {
			return err
		}
		if !known {
			log.Printf("[checkout] order=%s customer=%s not registered, stats skipped", o.ID, o.CustomerID)
		}
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.publisher.PublishOrderPlaced(pubCtx, placed); err != nil {
		log.Printf("[checkout] publish order=%s failed err=%v", placed.ID, err)
	}
	return placed, nil
}

func validate(req order.PlaceOrderRequest) error {
	if strings.TrimSpace(req.CustomerID) == "" || len(req.Items) == 0 {
		return apperr.Validation("Invalid order data: customerId and at least one item are required")
	}
	for i, it := range req.Items {
		if strings.TrimSpace(it.VegetableID) == "" {
			return apperr.Validation("Invalid order data: item %d has no vegetableId", i)
		}
		if it.Quantity <= 0 {
			return apperr.Validation("Invalid order data: item %d has invalid quantity", i)
		}
	}
	return nil
}
