package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/verduleria-ecom/internal/order"
)

func TestClient_PlaceOrder(t *testing.T) {
	var got order.PlaceOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"order-1","customerId":"cust-1","totalAmount":80,"status":"Pending","estimatedDelivery":"2026-01-03T10:00:00Z"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api/")
	o, err := c.PlaceOrder(context.Background(), order.PlaceOrderRequest{
		CustomerID: "cust-1",
		Items:      []order.PlaceOrderItem{{VegetableID: "veg-1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", o.ID)
	assert.Equal(t, "80", o.TotalAmount.String())
	assert.Equal(t, "cust-1", got.CustomerID)
	require.Len(t, got.Items, 1)
}

func TestClient_ErrorMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/orders":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Insufficient stock for Tomato"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`oops`))
		}
	}))
	defer srv.Close()
	c := NewClient(srv.URL + "/api")

	_, err := c.PlaceOrder(context.Background(), order.PlaceOrderRequest{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Insufficient stock for Tomato", apiErr.Error())

	_, err = c.Vegetables(context.Background())
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Failed to load vegetables", apiErr.Error())
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Vegetables(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Failed to load vegetables", apiErr.Message)
	assert.Zero(t, apiErr.Status)
}

func TestClient_OrdersByCustomerEscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	orders, err := c.OrdersByCustomer(context.Background(), "cust/1?x")
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, "/api/orders/customer/cust%2F1%3Fx", gotPath)
}
