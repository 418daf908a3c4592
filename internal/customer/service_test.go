package customer

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
)

func newService(t *testing.T) (*Service, *FileRepo) {
	t.Helper()
	repo, err := OpenFileRepo(filepath.Join(t.TempDir(), "customers.json"))
	require.NoError(t, err)
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestRegister_InitializesStats(t *testing.T) {
	svc, _ := newService(t)

	c, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Phone: "98765",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^cust-`, c.ID)
	assert.Equal(t, 0, c.TotalOrders)
	assert.True(t, c.TotalSpent.IsZero())
	assert.Equal(t, "", c.Address)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), c.CreatedAt)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, repo := newService(t)

	for _, in := range []RegisterRequest{
		{Email: "a@x", Phone: "1"},
		{Name: "A", Phone: "1"},
		{Name: "A", Email: "a@x"},
		{Name: "  ", Email: "a@x", Phone: "1"},
	} {
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, apperr.ErrValidation, "%+v", in)
	}
	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	_, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "same@example.com", Phone: "1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Name: "B", Email: "same@example.com", Phone: "2"})
	assert.ErrorIs(t, err, ErrAlreadyExist)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdate_MergesAndSkipsEmailCheck(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	a, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@example.com", Phone: "1", Address: "Old"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterRequest{Name: "B", Email: "b@example.com", Phone: "2"})
	require.NoError(t, err)

	email := "b@example.com"
	addr := "New street"
	got, err := svc.Update(ctx, a.ID, UpdateRequest{Email: &email, Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, "1", got.Phone)
	assert.Equal(t, "b@example.com", got.Email)
	assert.Equal(t, "New street", got.Address)

	_, err = svc.Update(ctx, "cust-missing", UpdateRequest{Address: &addr})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordPurchase(t *testing.T) {
	c := Customer{TotalSpent: money.Zero}
	c.RecordPurchase(money.FromInt(120))
	c.RecordPurchase(money.MustParse("30.5"))
	assert.Equal(t, 2, c.TotalOrders)
	assert.True(t, c.TotalSpent.Equal(money.MustParse("150.5")))
}
