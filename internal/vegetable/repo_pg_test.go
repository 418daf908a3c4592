package vegetable

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/verduleria-ecom/internal/money"
	"github.com/MikeMC777/verduleria-ecom/internal/pgstore"
)

func TestPGRepo_PriceKeepsAllDecimals(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := pgstore.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, pgstore.InitSchema(ctx, pool))

	repo := NewPGRepo(pool)
	v := &Vegetable{ID: NewID(), Name: "Saffron", Price: money.MustParse("12.345"), Unit: "g", Stock: 3}
	require.NoError(t, repo.Create(ctx, v))
	t.Cleanup(func() { _, _ = repo.Delete(context.Background(), v.ID) })

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(money.MustParse("12.345")), got.Price.String())
}
