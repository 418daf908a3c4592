// Package customer manages registered customers and their running order
// statistics.
package customer

import (
	"context"
	"strings"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/jsonfile"
)

var (
	ErrNotFound     = apperr.NotFound("Customer not found")
	ErrAlreadyExist = apperr.Conflict("Customer already exists")
)

type Repository interface {
	// Create stores c unless another customer already uses its email.
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
}

type FileRepo struct {
	docs *jsonfile.Collection[Customer]
}

func NewFileRepo(docs *jsonfile.Collection[Customer]) *FileRepo { return &FileRepo{docs: docs} }

func OpenFileRepo(path string) (*FileRepo, error) {
	docs, err := jsonfile.Open[Customer](path)
	if err != nil {
		return nil, err
	}
	return NewFileRepo(docs), nil
}

func (r *FileRepo) Docs() *jsonfile.Collection[Customer] { return r.docs }

func (r *FileRepo) Create(ctx context.Context, c *Customer) error {
	return r.docs.Update(func(items []Customer) ([]Customer, error) {
		for _, it := range items {
			if sameEmail(it.Email, c.Email) {
				return nil, ErrAlreadyExist
			}
		}
		return append(items, *c), nil
	})
}

func (r *FileRepo) GetByID(ctx context.Context, id string) (*Customer, error) {
	items, err := r.docs.List()
	if err != nil {
		return nil, err
	}
	if i := Index(items, id); i >= 0 {
		c := items[i]
		return &c, nil
	}
	return nil, ErrNotFound
}

func (r *FileRepo) Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error) {
	var out Customer
	err := r.docs.Update(func(items []Customer) ([]Customer, error) {
		i := Index(items, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		req.Apply(&items[i])
		out = items[i]
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *FileRepo) List(ctx context.Context) ([]Customer, error) {
	return r.docs.List()
}

func Index(items []Customer, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
