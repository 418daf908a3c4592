package storefront

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/verduleria-ecom/internal/money"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
)

type MockPlacer struct {
	mock.Mock
}

func (m *MockPlacer) PlaceOrder(ctx context.Context, in order.PlaceOrderRequest) (*order.Order, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

var details = Details{Name: "Asha", Phone: "+91 98765", Address: "12 Market Road"}

func filledCart(t *testing.T) *Cart {
	t.Helper()
	var c Cart
	require.NoError(t, c.Add(tomato, 2))
	require.NoError(t, c.Add(potato, 1))
	return &c
}

func TestCheckoutAPI_ClearsCartOnSuccess(t *testing.T) {
	st, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	cart := filledCart(t)
	require.NoError(t, SaveCart(st, cart))

	eta := time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)
	placer := new(MockPlacer)
	placer.On("PlaceOrder", mock.Anything, order.PlaceOrderRequest{
		CustomerID: "cust-1",
		Items: []order.PlaceOrderItem{
			{VegetableID: "veg-1", Quantity: 2},
			{VegetableID: "veg-2", Quantity: 1},
		},
		DeliveryAddress: "12 Market Road",
		Phone:           "+91 98765",
	}).Return(&order.Order{ID: "order-9", TotalAmount: money.MustParse("110.5"), EstimatedDelivery: eta}, nil).Once()

	co, err := NewCheckout(ModeAPI, placer, st, "")
	require.NoError(t, err)
	rc, err := co.Submit(context.Background(), &Session{ID: "cust-1"}, cart, details)
	require.NoError(t, err)

	assert.Equal(t, "order-9", rc.OrderID)
	assert.True(t, rc.EstimatedDelivery.Equal(eta))
	assert.True(t, cart.Empty())
	stored, err := LoadCart(st)
	require.NoError(t, err)
	assert.True(t, stored.Empty())
	placer.AssertExpectations(t)
}

func TestCheckoutAPI_KeepsCartOnFailure(t *testing.T) {
	placer := new(MockPlacer)
	placer.On("PlaceOrder", mock.Anything, mock.Anything).
		Return(nil, &APIError{Status: 400, Message: "Insufficient stock for Tomato"}).Once()

	co, err := NewCheckout(ModeAPI, placer, nil, "")
	require.NoError(t, err)
	cart := filledCart(t)
	_, err = co.Submit(context.Background(), &Session{ID: "cust-1"}, cart, details)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Insufficient stock for Tomato", apiErr.Message)
	assert.Len(t, cart.Items, 2)
}

func TestCheckoutAPI_Preconditions(t *testing.T) {
	placer := new(MockPlacer)
	co, err := NewCheckout(ModeAPI, placer, nil, "")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = co.Submit(ctx, nil, filledCart(t), details)
	assert.EqualError(t, err, "Please login first")

	_, err = co.Submit(ctx, &Session{ID: "cust-1"}, &Cart{}, details)
	assert.EqualError(t, err, "Your cart is empty")

	_, err = co.Submit(ctx, &Session{ID: "cust-1"}, filledCart(t), Details{Name: "Asha"})
	assert.EqualError(t, err, "Please fill all fields")

	placer.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestCheckoutWhatsApp(t *testing.T) {
	co, err := NewCheckout(ModeWhatsApp, nil, nil, "+54 9 11 5555-0000")
	require.NoError(t, err)
	cart := filledCart(t)

	rc, err := co.Submit(context.Background(), nil, cart, details)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rc.Link, "https://wa.me/5491155550000?text="), rc.Link)
	assert.NotContains(t, rc.Link, "+")

	u, err := url.Parse(rc.Link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Tomato x2 kg = $80.00")
	assert.Contains(t, text, "Potato x1 kg = $30.50")
	assert.Contains(t, text, "Total: $160.50")
	assert.Contains(t, text, "Address: 12 Market Road")
	assert.Len(t, cart.Items, 2, "whatsapp checkout leaves the cart alone")
	assert.Empty(t, rc.OrderID)
}

func TestNewCheckout_Invalid(t *testing.T) {
	_, err := NewCheckout(ModeWhatsApp, nil, nil, "")
	assert.Error(t, err)
	_, err = NewCheckout(ModeAPI, nil, nil, "")
	assert.Error(t, err)
	_, err = NewCheckout("fax", nil, nil, "")
	assert.Error(t, err)
}
