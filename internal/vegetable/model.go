package vegetable

import (
	"strings"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
)

type Vegetable struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Price       money.Amount `json:"price"`
	Unit        string       `json:"unit"`
	Stock       int          `json:"stock"`
	Rating      float64      `json:"rating"`
}

// CreateRequest payload of creation.
// swagger:model CreateVegetableRequest
type CreateRequest struct {
	Name        string       `json:"name"        example:"Tomato"`
	Category    string       `json:"category"    example:"Fruit Vegetables"`
	Description string       `json:"description" example:"Fresh red tomatoes"`
	Price       money.Amount `json:"price"       example:"40" swaggertype:"number"`
	Unit        string       `json:"unit"        example:"kg"`
	Stock       *int         `json:"stock"       example:"10"`
}

func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Validation("name is required")
	}
	if r.Price.IsNegative() {
		return apperr.Validation("price must be non-negative")
	}
	if r.Stock != nil && *r.Stock < 0 {
		return apperr.Validation("stock must be non-negative")
	}
	return nil
}

// Vegetable builds the record to store. Stock defaults to 0 and the rating
// always starts at 0.
func (r CreateRequest) Vegetable(id string) Vegetable {
	v := Vegetable{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Category:    r.Category,
		Description: r.Description,
		Price:       r.Price,
		Unit:        r.Unit,
	}
	if r.Stock != nil {
		v.Stock = *r.Stock
	}
	return v
}

// UpdateRequest payload of partial update. Absent fields keep their value.
// swagger:model UpdateVegetableRequest
type UpdateRequest struct {
	Name        *string       `json:"name"`
	Category    *string       `json:"category"`
	Description *string       `json:"description"`
	Price       *money.Amount `json:"price" swaggertype:"number"`
	Unit        *string       `json:"unit"`
	Stock       *int          `json:"stock"`
	Rating      *float64      `json:"rating"`
}

func (r UpdateRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apperr.Validation("name cannot be empty")
	}
	if r.Price != nil && r.Price.IsNegative() {
		return apperr.Validation("price must be non-negative")
	}
	if r.Stock != nil && *r.Stock < 0 {
		return apperr.Validation("stock must be non-negative")
	}
	if r.Rating != nil && (*r.Rating < 0 || *r.Rating > 5) {
		return apperr.Validation("rating must be between 0 and 5")
	}
	return nil
}

// Apply overlays the supplied fields onto v.
func (r UpdateRequest) Apply(v *Vegetable) {
	if r.Name != nil {
		v.Name = strings.TrimSpace(*r.Name)
	}
	if r.Category != nil {
		v.Category = *r.Category
	}
	if r.Description != nil {
		v.Description = *r.Description
	}
	if r.Price != nil {
		v.Price = *r.Price
	}
	if r.Unit != nil {
		v.Unit = *r.Unit
	}
	if r.Stock != nil {
		v.Stock = *r.Stock
	}
	if r.Rating != nil {
		v.Rating = *r.Rating
	}
}
