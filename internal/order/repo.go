// Package order holds placed orders: the record, its repositories and the
// events emitted when an order is placed.
package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/jsonfile"
)

var (
	ErrNotFound = apperr.NotFound("Order not found")
)

// Repository is append-only apart from the status field.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*Order, error)
}

func NewID() string { return "order-" + uuid.NewString() }

type FileRepo struct {
	docs *jsonfile.Collection[Order]
}

func NewFileRepo(docs *jsonfile.Collection[Order]) *FileRepo { return &FileRepo{docs: docs} }

func OpenFileRepo(path string) (*FileRepo, error) {
	docs, err := jsonfile.Open[Order](path)
	if err != nil {
		return nil, err
	}
	return NewFileRepo(docs), nil
}

func (r *FileRepo) Docs() *jsonfile.Collection[Order] { return r.docs }

func (r *FileRepo) Create(ctx context.Context, o *Order) error {
	return r.docs.Update(func(items []Order) ([]Order, error) {
		return append(items, *o), nil
	})
}

func (r *FileRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	items, err := r.docs.List()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *FileRepo) List(ctx context.Context) ([]Order, error) {
	return r.docs.List()
}

func (r *FileRepo) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	items, err := r.docs.List()
	if err != nil {
		return nil, err
	}
	out := []Order{}
	for _, o := range items {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *FileRepo) UpdateStatus(ctx context.Context, id, status string) (*Order, error) {
	var out Order
	err := r.docs.Update(func(items []Order) ([]Order, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				out = items[i]
				return items, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
