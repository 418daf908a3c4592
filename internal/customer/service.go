package customer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func NewID() string { return "cust-" + uuid.NewString() }

// Register creates a customer with zeroed statistics.
func (s *Service) Register(ctx context.Context, in RegisterRequest) (*Customer, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || email == "" || phone == "" {
		return nil, apperr.Validation("Name, email, and phone are required")
	}
	c := &Customer{
		ID:          NewID(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Address:     strings.TrimSpace(in.Address),
		CreatedAt:   s.now().UTC(),
		TotalOrders: 0,
		TotalSpent:  money.Zero,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Validation("id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// Update overlays the supplied profile fields. Email uniqueness is only
// enforced at registration.
func (s *Service) Update(ctx context.Context, id string, in UpdateRequest) (*Customer, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, apperr.Validation("name cannot be empty")
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) == "" {
		return nil, apperr.Validation("email cannot be empty")
	}
	return s.repo.Update(ctx, id, in)
}
