package pgstore

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// TEST_POSTGRES_DSN points at a disposable database.
func TestInitSchema_Idempotent(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, InitSchema(ctx, pool))
	require.NoError(t, InitSchema(ctx, pool))
}

func TestConnect_BadDSN(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://nobody@127.0.0.1:1/none?connect_timeout=1")
	require.Error(t, err)
}
