package storefront

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
)

type Mode string

const (
	ModeAPI      Mode = "api"
	ModeWhatsApp Mode = "whatsapp"
)

// Details are the delivery fields asked at checkout.
type Details struct {
	Name    string
	Phone   string
	Address string
}

// Receipt is the outcome of a checkout. API checkouts fill OrderID and
// EstimatedDelivery, WhatsApp checkouts fill Link.
type Receipt struct {
	OrderID           string
	EstimatedDelivery time.Time
	Total             money.Amount
	Link              string
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in order.PlaceOrderRequest) (*order.Order, error)
}

type Checkout struct {
	mode     Mode
	api      OrderPlacer
	storage  Storage
	waNumber string
}

func NewCheckout(mode Mode, api OrderPlacer, storage Storage, whatsappNumber string) (*Checkout, error) {
	switch mode {
	case ModeAPI:
		if api == nil {
			return nil, fmt.Errorf("storefront: api checkout needs a client")
		}
	case ModeWhatsApp:
		if digits(whatsappNumber) == "" {
			return nil, fmt.Errorf("storefront: whatsapp checkout needs a number")
		}
	default:
		return nil, fmt.Errorf("storefront: unknown checkout mode %q", mode)
	}
	return &Checkout{mode: mode, api: api, storage: storage, waNumber: digits(whatsappNumber)}, nil
}

func (c *Checkout) Mode() Mode { return c.mode }

func (c *Checkout) Submit(ctx context.Context, sess *Session, cart *Cart, d Details) (*Receipt, error) {
	if c.mode == ModeAPI && sess == nil {
		return nil, apperr.Validation("Please login first")
	}
	if cart == nil || cart.Empty() {
		return nil, apperr.Validation("Your cart is empty")
	}
	d = Details{
		Name:    strings.TrimSpace(d.Name),
		Phone:   strings.TrimSpace(d.Phone),
		Address: strings.TrimSpace(d.Address),
	}
	if d.Name == "" || d.Phone == "" || d.Address == "" {
		return nil, apperr.Validation("Please fill all fields")
	}
	if c.mode == ModeWhatsApp {
		return &Receipt{Total: cart.Total(), Link: WhatsAppLink(c.waNumber, OrderMessage(cart, d))}, nil
	}

	req := order.PlaceOrderRequest{
		CustomerID:      sess.ID,
		DeliveryAddress: d.Address,
		Phone:           d.Phone,
	}
	for _, it := range cart.Items {
		req.Items = append(req.Items, order.PlaceOrderItem{VegetableID: it.VegetableID, Quantity: it.Quantity})
	}
	o, err := c.api.PlaceOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	cart.Clear()
	if c.storage != nil {
		if err := SaveCart(c.storage, cart); err != nil {
			return nil, fmt.Errorf("order %s placed but cart not cleared: %w", o.ID, err)
		}
	}
	return &Receipt{OrderID: o.ID, EstimatedDelivery: o.EstimatedDelivery, Total: o.TotalAmount}, nil
}

// OrderMessage renders the cart as the text sent to the vendor.
func OrderMessage(cart *Cart, d Details) string {
	var b strings.Builder
	b.WriteString("Hello! I would like to order:\n\n")
	for _, it := range cart.Items {
		unit := ""
		if it.Unit != "" {
			unit = " " + it.Unit
		}
		fmt.Fprintf(&b, "- %s x%d%s = $%s\n", it.Name, it.Quantity, unit, it.Amount().StringFixed(2))
	}
	fmt.Fprintf(&b, "\nSubtotal: $%s\n", cart.Subtotal().StringFixed(2))
	fmt.Fprintf(&b, "Delivery: $%s\n", DeliveryFee.StringFixed(2))
	fmt.Fprintf(&b, "Total: $%s\n\n", cart.Total().StringFixed(2))
	fmt.Fprintf(&b, "Name: %s\nPhone: %s\nAddress: %s", d.Name, d.Phone, d.Address)
	return b.String()
}

// WhatsAppLink builds a wa.me deep link with text pre-filled.
func WhatsAppLink(number, text string) string {
	q := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + digits(number) + "?text=" + q
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
