package checkout

import (
	"context"

	"github.com/MikeMC777/verduleria-ecom/internal/money"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

// Tx is the view of the three stores a placement works against. Nothing
// done through a Tx is visible to other requests until the Ledger commits.
type Tx interface {
	Vegetable(ctx context.Context, id string) (*vegetable.Vegetable, error)
	SetStock(ctx context.Context, id string, stock int) error
	AppendOrder(ctx context.Context, o *order.Order) error
	// RecordPurchase reports false when customerID is not registered.
	RecordPurchase(ctx context.Context, customerID string, total money.Amount) (bool, error)
}

// Ledger runs fn with exclusive access to the catalog, customers and
// orders. If fn returns an error nothing is persisted.
type Ledger interface {
	Do(ctx context.Context, fn func(tx Tx) error) error
}
