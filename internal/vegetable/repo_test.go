package vegetable

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
)

func newFileRepo(t *testing.T) *FileRepo {
	t.Helper()
	r, err := OpenFileRepo(filepath.Join(t.TempDir(), "vegetables.json"))
	require.NoError(t, err)
	return r
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }
func amountp(s string) *money.Amount {
	a := money.MustParse(s)
	return &a
}

func TestFileRepo_CreateAssignsID(t *testing.T) {
	ctx := context.Background()
	r := newFileRepo(t)

	v := CreateRequest{Name: "Tomato", Price: money.FromInt(40), Unit: "kg"}.Vegetable("")
	require.NoError(t, r.Create(ctx, &v))
	assert.Regexp(t, `^veg-`, v.ID)
	assert.Equal(t, 0, v.Stock)
	assert.Equal(t, 0.0, v.Rating)

	got, err := r.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", got.Name)
	assert.True(t, got.Price.Equal(money.FromInt(40)))
}

func TestFileRepo_PricesStayJSONNumbers(t *testing.T) {
	ctx := context.Background()
	r := newFileRepo(t)
	v := Vegetable{ID: "veg-1", Name: "Potato", Price: money.MustParse("30.5"), Stock: 3}
	require.NoError(t, r.Create(ctx, &v))

	raw, err := os.ReadFile(r.Docs().Path())
	require.NoError(t, err)
	var doc []map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, 30.5, doc[0]["price"])
}

func TestFileRepo_UpdateMergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	r := newFileRepo(t)
	v := Vegetable{ID: "veg-1", Name: "Carrot", Category: "Root", Description: "Orange", Price: money.FromInt(35), Unit: "kg", Stock: 8}
	require.NoError(t, r.Create(ctx, &v))

	got, err := r.Update(ctx, "veg-1", UpdateRequest{Stock: intp(5), Price: amountp("36")})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
	assert.True(t, got.Price.Equal(money.FromInt(36)))
	assert.Equal(t, "Carrot", got.Name)
	assert.Equal(t, "Root", got.Category)
	assert.Equal(t, "Orange", got.Description)

	_, err = r.Update(ctx, "veg-404", UpdateRequest{Name: strp("x")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFileRepo_Delete(t *testing.T) {
	ctx := context.Background()
	r := newFileRepo(t)
	v := Vegetable{ID: "veg-1", Name: "Onion"}
	require.NoError(t, r.Create(ctx, &v))

	ok, err := r.Delete(ctx, "veg-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Delete(ctx, "veg-1")
	require.NoError(t, err)
	assert.False(t, ok)

	items, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRequestValidation(t *testing.T) {
	assert.ErrorIs(t, CreateRequest{}.Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, CreateRequest{Name: "x", Stock: intp(-1)}.Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, CreateRequest{Name: "x", Price: money.FromInt(-1)}.Validate(), apperr.ErrValidation)
	assert.NoError(t, CreateRequest{Name: "x", Price: money.FromInt(1), Stock: intp(0)}.Validate())

	assert.ErrorIs(t, UpdateRequest{Stock: intp(-3)}.Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, UpdateRequest{Name: strp("  ")}.Validate(), apperr.ErrValidation)
	assert.NoError(t, UpdateRequest{}.Validate())
}

func TestSeed_OnlyEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepo(t)

	n, err := Seed(ctx, repo, SampleCatalog(), false)
	require.NoError(t, err)
	assert.Equal(t, len(SampleCatalog()), n)

	n, err = Seed(ctx, repo, SampleCatalog(), false)
	require.NoError(t, err)
	assert.Zero(t, n)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(SampleCatalog()))
	for _, v := range items {
		assert.True(t, strings.HasPrefix(v.ID, "veg-"), v.ID)
	}
}
