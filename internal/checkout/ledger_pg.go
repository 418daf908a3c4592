package checkout

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/customer"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

// PGLedger runs a placement as one transaction. Vegetables are row-locked
// as they are read, so concurrent placements on the same item queue up.
type PGLedger struct{ db *pgxpool.Pool }

func NewPGLedger(db *pgxpool.Pool) *PGLedger { return &PGLedger{db: db} }

func (l *PGLedger) Do(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := l.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperr.Storage("failed to place order", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(pgTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperr.Storage("failed to place order", err)
	}
	return nil
}

type pgTx struct{ tx pgx.Tx }

func (t pgTx) Vegetable(ctx context.Context, id string) (*vegetable.Vegetable, error) {
	return vegetable.GetForUpdate(ctx, t.tx, id)
}

func (t pgTx) SetStock(ctx context.Context, id string, stock int) error {
	return vegetable.SetStock(ctx, t.tx, id, stock)
}

func (t pgTx) AppendOrder(ctx context.Context, o *order.Order) error {
	return order.Insert(ctx, t.tx, o)
}

func (t pgTx) RecordPurchase(ctx context.Context, customerID string, total money.Amount) (bool, error) {
	return customer.RecordPurchase(ctx, t.tx, customerID, total)
}
