package storefront

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/verduleria-ecom/internal/customer"
)

func TestLocalLogin(t *testing.T) {
	s, err := LocalLogin("  asha@example.com ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s.ID, "cust-"))
	assert.Equal(t, "asha@example.com", s.DisplayName())

	_, err = LocalLogin(" ")
	assert.Error(t, err)
}

func TestSession_PersistAndClear(t *testing.T) {
	st, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	none, err := LoadSession(st)
	require.NoError(t, err)
	assert.Nil(t, none)

	s := SessionFor(&customer.Customer{ID: "cust-1", Name: "Asha", Email: "a@x", Phone: "1"})
	require.NoError(t, SaveSession(st, s))

	got, err := LoadSession(st)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "cust-1", got.ID)
	assert.Equal(t, "Asha", got.DisplayName())

	require.NoError(t, ClearSession(st))
	require.NoError(t, ClearSession(st))
	got, err = LoadSession(st)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStorage_RejectsPathKeys(t *testing.T) {
	st, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, st.Save("../escape", 1))
}
