package storefront

import (
	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

// DeliveryFee is charged once per order.
var DeliveryFee = money.FromInt(50)

// MaxLineQuantity bounds a single cart line.
const MaxLineQuantity = 1_000_000

// CartItem is a cart line. Price and name are copied from the catalog when
// the line is added and are for display only; the server reprices.
type CartItem struct {
	VegetableID string       `json:"vegetableId"`
	Name        string       `json:"name"`
	Price       money.Amount `json:"price"`
	Unit        string       `json:"unit"`
	Quantity    int          `json:"quantity"`
}

func (it CartItem) Amount() money.Amount { return money.Line(it.Price, it.Quantity) }

type Cart struct {
	Items []CartItem
}

// Add puts qty units of v in the cart, merging with an existing line.
func (c *Cart) Add(v vegetable.Vegetable, qty int) error {
	if qty <= 0 {
		return apperr.Validation("Please select a quantity")
	}
	if i := c.index(v.ID); i >= 0 {
		if qty > MaxLineQuantity-c.Items[i].Quantity {
			return apperr.Validation("Quantity too large")
		}
		c.Items[i].Quantity += qty
		return nil
	}
	if qty > MaxLineQuantity {
		return apperr.Validation("Quantity too large")
	}
	c.Items = append(c.Items, CartItem{
		VegetableID: v.ID,
		Name:        v.Name,
		Price:       v.Price,
		Unit:        v.Unit,
		Quantity:    qty,
	})
	return nil
}

// SetQuantity replaces a line's quantity; zero or less drops the line and
// anything above MaxLineQuantity is capped. Unknown ids are ignored.
func (c *Cart) SetQuantity(vegetableID string, qty int) {
	i := c.index(vegetableID)
	if i < 0 {
		return
	}
	if qty <= 0 {
		c.Remove(vegetableID)
		return
	}
	c.Items[i].Quantity = min(qty, MaxLineQuantity)
}

func (c *Cart) Remove(vegetableID string) {
	out := c.Items[:0]
	for _, it := range c.Items {
		if it.VegetableID != vegetableID {
			out = append(out, it)
		}
	}
	c.Items = out
}

func (c *Cart) Clear() { c.Items = nil }

func (c *Cart) Empty() bool { return len(c.Items) == 0 }

func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() money.Amount {
	sum := money.Zero
	for _, it := range c.Items {
		sum = sum.Add(it.Amount())
	}
	return sum
}

func (c *Cart) Total() money.Amount { return c.Subtotal().Add(DeliveryFee) }

func (c *Cart) index(id string) int {
	for i := range c.Items {
		if c.Items[i].VegetableID == id {
			return i
		}
	}
	return -1
}

// LoadCart returns the persisted cart, or an empty one. Lines without a
// positive quantity are dropped and oversized ones are capped.
func LoadCart(s Storage) (*Cart, error) {
	var items []CartItem
	if _, err := s.Load(KeyCart, &items); err != nil {
		return nil, err
	}
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		it.Quantity = min(it.Quantity, MaxLineQuantity)
		out = append(out, it)
	}
	return &Cart{Items: out}, nil
}

func SaveCart(s Storage, c *Cart) error {
	items := c.Items
	if items == nil {
		items = []CartItem{}
	}
	return s.Save(KeyCart, items)
}
