package checkout

import (
	"context"
	"log"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/customer"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

// document is the part of jsonfile.Collection the ledger needs.
type document[T any] interface {
	Lock()
	Unlock()
	Snapshot() ([]byte, error)
	ReadAll() ([]T, error)
	WriteAll(items []T) error
	Restore(raw []byte) error
}

// FileLedger commits a placement as three whole-file rewrites: orders, then
// vegetables, then customers. The three locks are held throughout. If a
// later write fails the earlier files are put back from the snapshot taken
// before fn ran.
type FileLedger struct {
	vegetables document[vegetable.Vegetable]
	customers  document[customer.Customer]
	orders     document[order.Order]
}

func NewFileLedger(v *vegetable.FileRepo, c *customer.FileRepo, o *order.FileRepo) *FileLedger {
	return &FileLedger{vegetables: v.Docs(), customers: c.Docs(), orders: o.Docs()}
}

func (l *FileLedger) Do(ctx context.Context, fn func(tx Tx) error) error {
	// Fixed acquisition order; every multi-collection caller goes through here.
	l.vegetables.Lock()
	defer l.vegetables.Unlock()
	l.customers.Lock()
	defer l.customers.Unlock()
	l.orders.Lock()
	defer l.orders.Unlock()

	snap := struct{ vegetables, customers, orders []byte }{}
	var err error
	if snap.vegetables, err = l.vegetables.Snapshot(); err != nil {
		return err
	}
	if snap.customers, err = l.customers.Snapshot(); err != nil {
		return err
	}
	if snap.orders, err = l.orders.Snapshot(); err != nil {
		return err
	}

	tx := &fileTx{}
	if tx.vegetables, err = l.vegetables.ReadAll(); err != nil {
		return err
	}
	if tx.customers, err = l.customers.ReadAll(); err != nil {
		return err
	}
	if tx.orders, err = l.orders.ReadAll(); err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	type undo struct {
		name    string
		restore func() error
	}
	var written []undo
	rollback := func(cause error) error {
		for i := len(written) - 1; i >= 0; i-- {
			if rerr := written[i].restore(); rerr != nil {
				log.Printf("[checkout] restore %s failed err=%v cause=%v", written[i].name, rerr, cause)
			}
		}
		return apperr.Storage("failed to place order", cause)
	}

	if tx.ordersDirty {
		if err := l.orders.WriteAll(tx.orders); err != nil {
			return rollback(err)
		}
		written = append(written, undo{"orders", func() error { return l.orders.Restore(snap.orders) }})
	}
	if tx.vegetablesDirty {
		if err := l.vegetables.WriteAll(tx.vegetables); err != nil {
			return rollback(err)
		}
		written = append(written, undo{"vegetables", func() error { return l.vegetables.Restore(snap.vegetables) }})
	}
	if tx.customersDirty {
		if err := l.customers.WriteAll(tx.customers); err != nil {
			return rollback(err)
		}
	}
	return nil
}

type fileTx struct {
	vegetables []vegetable.Vegetable
	customers  []customer.Customer
	orders     []order.Order

	vegetablesDirty, customersDirty, ordersDirty bool
}

func (t *fileTx) Vegetable(_ context.Context, id string) (*vegetable.Vegetable, error) {
	i := vegetable.Index(t.vegetables, id)
	if i < 0 {
		return nil, vegetable.ErrNotFound
	}
	v := t.vegetables[i]
	return &v, nil
}

func (t *fileTx) SetStock(_ context.Context, id string, stock int) error {
	i := vegetable.Index(t.vegetables, id)
	if i < 0 {
		return vegetable.ErrNotFound
	}
	t.vegetables[i].Stock = stock
	t.vegetablesDirty = true
	return nil
}

func (t *fileTx) AppendOrder(_ context.Context, o *order.Order) error {
	t.orders = append(t.orders, *o)
	t.ordersDirty = true
	return nil
}

func (t *fileTx) RecordPurchase(_ context.Context, customerID string, total money.Amount) (bool, error) {
	i := customer.Index(t.customers, customerID)
	if i < 0 {
		return false, nil
	}
	t.customers[i].RecordPurchase(total)
	t.customersDirty = true
	return true, nil
}
