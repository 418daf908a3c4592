package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/verduleria-ecom/internal/order"
	"github.com/MikeMC777/verduleria-ecom/internal/storefront"
)

const catalogJSON = `[
  {"id":"veg-1","name":"Tomato","category":"Fruit Vegetables","description":"Fresh red tomatoes","price":40,"unit":"kg","stock":10,"rating":4.5},
  {"id":"veg-2","name":"Spinach","category":"Leafy Greens","description":"Organic leaves","price":15,"unit":"bunch","stock":3,"rating":4.6}
]`

type fakeAPI struct {
	placed []order.PlaceOrderRequest
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/vegetables", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	})
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		var in order.PlaceOrderRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.placed = append(f.placed, in)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"order-7","customerId":"` + in.CustomerID + `","totalAmount":130,"status":"Pending",` +
			`"createdAt":"2026-01-01T10:00:00Z","estimatedDelivery":"2026-01-03T10:00:00Z"}`))
	})
	return mux
}

func newTestApp(t *testing.T, mode storefront.Mode) (*app, *fakeAPI, *bytes.Buffer) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	st, err := storefront.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return &app{
		api:     storefront.NewClient(srv.URL + "/api"),
		storage: st,
		mode:    mode,
		waNum:   "5491155550000",
		out:     out,
	}, api, out
}

func TestCatalogFilters(t *testing.T) {
	a, _, out := newTestApp(t, storefront.ModeAPI)
	require.NoError(t, a.run(context.Background(), []string{"catalog", "-category", "Leafy Greens"}))
	assert.Contains(t, out.String(), "Spinach")
	assert.NotContains(t, out.String(), "Tomato")

	out.Reset()
	require.NoError(t, a.run(context.Background(), []string{"catalog", "-search", "RED"}))
	assert.Contains(t, out.String(), "veg-1")
	assert.NotContains(t, out.String(), "veg-2")
}

func TestCartCommands(t *testing.T) {
	a, _, out := newTestApp(t, storefront.ModeAPI)
	ctx := context.Background()

	require.NoError(t, a.run(ctx, []string{"cart", "add", "-id", "veg-1", "-qty", "2"}))
	require.NoError(t, a.run(ctx, []string{"cart", "add", "-id", "veg-1", "-qty", "3"}))
	cart, err := storefront.LoadCart(a.storage)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	assert.Error(t, a.run(ctx, []string{"cart", "add", "-id", "veg-404"}))

	require.NoError(t, a.run(ctx, []string{"cart", "set", "-id", "veg-1", "-qty", "0"}))
	assert.Contains(t, out.String(), "Your cart is empty")
}

func TestCheckoutAPI(t *testing.T) {
	a, api, out := newTestApp(t, storefront.ModeAPI)
	ctx := context.Background()
	require.NoError(t, a.run(ctx, []string{"cart", "add", "-id", "veg-1", "-qty", "2"}))

	err := a.run(ctx, []string{"checkout", "-name", "Asha", "-phone", "555", "-address", "12 Market Road"})
	assert.EqualError(t, err, "Please login first")

	require.NoError(t, a.run(ctx, []string{"login", "-email", "asha@example.com"}))
	out.Reset()
	require.NoError(t, a.run(ctx, []string{"checkout", "-name", "Asha", "-phone", "555", "-address", "12 Market Road"}))

	assert.Contains(t, out.String(), "order id: order-7")
	require.Len(t, api.placed, 1)
	assert.True(t, strings.HasPrefix(api.placed[0].CustomerID, "cust-"))
	assert.Equal(t, []order.PlaceOrderItem{{VegetableID: "veg-1", Quantity: 2}}, api.placed[0].Items)

	cart, err := storefront.LoadCart(a.storage)
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCheckoutWhatsAppKeepsCart(t *testing.T) {
	a, api, out := newTestApp(t, storefront.ModeWhatsApp)
	ctx := context.Background()
	require.NoError(t, a.run(ctx, []string{"cart", "add", "-id", "veg-2", "-qty", "1"}))

	require.NoError(t, a.run(ctx, []string{"checkout", "-name", "Asha", "-phone", "555", "-address", "12 Market Road"}))
	assert.Contains(t, out.String(), "https://wa.me/5491155550000?text=")
	assert.Empty(t, api.placed)

	cart, err := storefront.LoadCart(a.storage)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestLogoutAndWhoami(t *testing.T) {
	a, _, out := newTestApp(t, storefront.ModeAPI)
	ctx := context.Background()
	require.NoError(t, a.run(ctx, []string{"login", "-email", "asha@example.com"}))
	require.NoError(t, a.run(ctx, []string{"whoami"}))
	assert.Contains(t, out.String(), "asha@example.com")

	require.NoError(t, a.run(ctx, []string{"logout"}))
	out.Reset()
	require.NoError(t, a.run(ctx, []string{"whoami"}))
	assert.Equal(t, "Not logged in\n", out.String())
}
