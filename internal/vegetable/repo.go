// Package vegetable provides the catalog: the vegetable record, its
// repository interface and the JSON-file and PostgreSQL implementations.
package vegetable

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/jsonfile"
)

var (
	ErrNotFound = apperr.NotFound("Vegetable not found")
)

type Repository interface {
	List(ctx context.Context) ([]Vegetable, error)
	GetByID(ctx context.Context, id string) (*Vegetable, error)
	Create(ctx context.Context, v *Vegetable) error
	Update(ctx context.Context, id string, req UpdateRequest) (*Vegetable, error)
	Delete(ctx context.Context, id string) (bool, error)
}

func NewID() string { return "veg-" + uuid.NewString() }

// FileRepo keeps the catalog in a single JSON document.
type FileRepo struct {
	docs *jsonfile.Collection[Vegetable]
}

func NewFileRepo(docs *jsonfile.Collection[Vegetable]) *FileRepo { return &FileRepo{docs: docs} }

func OpenFileRepo(path string) (*FileRepo, error) {
	docs, err := jsonfile.Open[Vegetable](path)
	if err != nil {
		return nil, err
	}
	return NewFileRepo(docs), nil
}

// Docs exposes the underlying collection to the checkout ledger.
func (r *FileRepo) Docs() *jsonfile.Collection[Vegetable] { return r.docs }

func (r *FileRepo) List(ctx context.Context) ([]Vegetable, error) {
	return r.docs.List()
}

func (r *FileRepo) GetByID(ctx context.Context, id string) (*Vegetable, error) {
	items, err := r.docs.List()
	if err != nil {
		return nil, err
	}
	if i := Index(items, id); i >= 0 {
		v := items[i]
		return &v, nil
	}
	return nil, ErrNotFound
}

func (r *FileRepo) Create(ctx context.Context, v *Vegetable) error {
	if v.ID == "" {
		v.ID = NewID()
	}
	return r.docs.Update(func(items []Vegetable) ([]Vegetable, error) {
		return append(items, *v), nil
	})
}

func (r *FileRepo) Update(ctx context.Context, id string, req UpdateRequest) (*Vegetable, error) {
	var out Vegetable
	err := r.docs.Update(func(items []Vegetable) ([]Vegetable, error) {
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

func (r *FileRepo) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	err := r.docs.Update(func(items []Vegetable) ([]Vegetable, error) {
		i := Index(items, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		found = true
		return append(items[:i], items[i+1:]...), nil
	})
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return found, err
}

// Index returns the position of id in items, or -1.
func Index(items []Vegetable, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
