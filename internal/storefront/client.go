// Package storefront is the shopper-side client: catalog browsing, a
// persisted cart and session, and checkout through the API or a WhatsApp
// deep link.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MikeMC777/verduleria-ecom/internal/customer"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

// APIError is what the client reports for any failed call. Message is the
// server's "error" field when it sent one, otherwise a generic fallback.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Vegetables(ctx context.Context) ([]vegetable.Vegetable, error) {
	var out []vegetable.Vegetable
	if err := c.do(ctx, http.MethodGet, "/vegetables", nil, &out, "Failed to load vegetables"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, in customer.RegisterRequest) (*customer.Customer, error) {
	var out customer.Customer
	if err := c.do(ctx, http.MethodPost, "/customers/register", in, &out, "Registration failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PlaceOrder(ctx context.Context, in order.PlaceOrderRequest) (*order.Order, error) {
	var out order.Order
	if err := c.do(ctx, http.MethodPost, "/orders", in, &out, "Failed to place order"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OrdersByCustomer(ctx context.Context, customerID string) ([]order.Order, error) {
	var out []order.Order
	if err := c.do(ctx, http.MethodGet, "/orders/customer/"+url.PathEscape(customerID), nil, &out, "Failed to load orders"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &APIError{Message: fallback, Err: err}
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return &APIError{Message: fallback, Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return &APIError{Message: fallback, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		msg := fallback
		if json.NewDecoder(res.Body).Decode(&e) == nil && e.Error != "" {
			msg = e.Error
		}
		return &APIError{Status: res.StatusCode, Message: msg, Err: fmt.Errorf("%s %s: status %d", method, path, res.StatusCode)}
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &APIError{Status: res.StatusCode, Message: fallback, Err: err}
	}
	return nil
}
