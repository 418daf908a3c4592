package customer

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/verduleria-ecom/internal/money"
	"github.com/MikeMC777/verduleria-ecom/internal/pgstore"
)

func TestPGRepo_ConcurrentRegistrationsSameEmail(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := pgstore.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, pgstore.InitSchema(ctx, pool))
	_, err = pool.Exec(ctx, `DELETE FROM customers WHERE lower(email) = 'race@example.com'`)
	require.NoError(t, err)

	repo := NewPGRepo(pool)
	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		dupes   int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := "race@example.com"
			if i%2 == 1 {
				email = "RACE@example.com"
			}
			err := repo.Create(ctx, &Customer{
				ID: NewID(), Name: "Racer", Email: email, Phone: "1",
				CreatedAt: time.Now().UTC(), TotalSpent: money.Zero,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, ErrAlreadyExist):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, dupes)
}
