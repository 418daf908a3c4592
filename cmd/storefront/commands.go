package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/customer"
	"github.com/MikeMC777/verduleria-ecom/internal/storefront"
)

const usage = `usage: storefront <command> [flags]

commands:
  catalog   [-category c] [-search text]
  cart      show | add -id ID -qty N | set -id ID -qty N | rm -id ID | clear
  login     -email address
  register  -name n -email e -phone p [-address a]
  logout
  whoami
  checkout  [-name n] [-phone p] [-address a]
  orders`

type app struct {
	api     *storefront.Client
	storage storefront.Storage
	mode    storefront.Mode
	waNum   string
	out     io.Writer
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return nil
	}
	switch args[0] {
	case "catalog":
		return a.catalog(ctx, args[1:])
	case "cart":
		return a.cart(ctx, args[1:])
	case "login":
		return a.login(args[1:])
	case "register":
		return a.register(ctx, args[1:])
	case "logout":
		if err := storefront.ClearSession(a.storage); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged out successfully")
		return nil
	case "whoami":
		return a.whoami()
	case "checkout":
		return a.checkout(ctx, args[1:])
	case "orders":
		return a.orders(ctx)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *app) catalog(ctx context.Context, args []string) error {
	fs := newFlags("catalog")
	category := fs.String("category", storefront.CategoryAll, "category to show, or all")
	search := fs.String("search", "", "text to look for in name or description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := a.api.Vegetables(ctx)
	if err != nil {
		return err
	}
	shown := storefront.Filter(items, *category, *search)
	if len(shown) == 0 {
		fmt.Fprintln(a.out, "No vegetables found")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tRATING")
	for _, v := range shown {
		fmt.Fprintf(tw, "%s\t%s\t%s\t$%s/%s\t%d\t%.1f\n",
			v.ID, v.Name, v.Category, v.Price.StringFixed(2), v.Unit, v.Stock, v.Rating)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\ncategories: %s\n", strings.Join(storefront.Categories(items), ", "))
	return nil
}

func (a *app) cart(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}
	fs := newFlags("cart " + sub)
	id := fs.String("id", "", "vegetable id")
	qty := fs.Int("qty", 1, "quantity")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cart, err := storefront.LoadCart(a.storage)
	if err != nil {
		return err
	}
	switch sub {
	case "show":
		a.printCart(cart)
		return nil
	case "add":
		items, err := a.api.Vegetables(ctx)
		if err != nil {
			return err
		}
		var found bool
		for _, v := range items {
			if v.ID == *id {
				found = true
				if err := cart.Add(v, *qty); err != nil {
					return err
				}
				break
			}
		}
		if !found {
			return apperr.NotFound("Product not found")
		}
		fmt.Fprintln(a.out, "Added to cart!")
	case "set":
		cart.SetQuantity(*id, *qty)
	case "rm":
		cart.Remove(*id)
	case "clear":
		cart.Clear()
	default:
		return fmt.Errorf("unknown cart command %q", sub)
	}
	if err := storefront.SaveCart(a.storage, cart); err != nil {
		return err
	}
	a.printCart(cart)
	return nil
}

func (a *app) printCart(cart *storefront.Cart) {
	if cart.Empty() {
		fmt.Fprintln(a.out, "Your cart is empty")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, it := range cart.Items {
		fmt.Fprintf(tw, "%s\t%s\tx%d %s\t$%s\n", it.VegetableID, it.Name, it.Quantity, it.Unit, it.Amount().StringFixed(2))
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "items: %d\nsubtotal: $%s\ndelivery: $%s\ntotal: $%s\n",
		cart.ItemCount(), cart.Subtotal().StringFixed(2), storefront.DeliveryFee.StringFixed(2), cart.Total().StringFixed(2))
}

func (a *app) login(args []string) error {
	fs := newFlags("login")
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := storefront.LocalLogin(*email)
	if err != nil {
		return err
	}
	if err := storefront.SaveSession(a.storage, s); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login successful!")
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := newFlags("register")
	var in customer.RegisterRequest
	fs.StringVar(&in.Name, "name", "", "full name")
	fs.StringVar(&in.Email, "email", "", "email address")
	fs.StringVar(&in.Phone, "phone", "", "phone number")
	fs.StringVar(&in.Address, "address", "", "delivery address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := a.api.Register(ctx, in)
	if err != nil {
		return err
	}
	if err := storefront.SaveSession(a.storage, storefront.SessionFor(c)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registration successful! Welcome, %s (%s)\n", c.Name, c.ID)
	return nil
}

func (a *app) whoami() error {
	s, err := storefront.LoadSession(a.storage)
	if err != nil {
		return err
	}
	if s == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", s.DisplayName(), s.ID)
	return nil
}

func (a *app) checkout(ctx context.Context, args []string) error {
	sess, err := storefront.LoadSession(a.storage)
	if err != nil {
		return err
	}
	var d storefront.Details
	if sess != nil {
		d = storefront.Details{Name: sess.Name, Phone: sess.Phone, Address: sess.Address}
	}
	fs := newFlags("checkout")
	fs.StringVar(&d.Name, "name", d.Name, "name for the delivery")
	fs.StringVar(&d.Phone, "phone", d.Phone, "contact phone")
	fs.StringVar(&d.Address, "address", d.Address, "delivery address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cart, err := storefront.LoadCart(a.storage)
	if err != nil {
		return err
	}
	co, err := storefront.NewCheckout(a.mode, a.api, a.storage, a.waNum)
	if err != nil {
		return err
	}
	rc, err := co.Submit(ctx, sess, cart, d)
	if err != nil {
		return err
	}
	if co.Mode() == storefront.ModeWhatsApp {
		fmt.Fprintf(a.out, "Open this link to send your order:\n%s\n", rc.Link)
		return nil
	}
	fmt.Fprintf(a.out, "Order placed!\norder id: %s\ntotal: $%s\nestimated delivery: %s\n",
		rc.OrderID, rc.Total.StringFixed(2), rc.EstimatedDelivery.Local().Format("Mon 02 Jan 2006"))
	return nil
}

func (a *app) orders(ctx context.Context) error {
	sess, err := storefront.LoadSession(a.storage)
	if err != nil {
		return err
	}
	if sess == nil {
		return apperr.Validation("Please login first")
	}
	list, err := a.api.OrdersByCustomer(ctx, sess.ID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No orders yet")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tSTATUS\tTOTAL\tPLACED")
	for _, o := range list {
		fmt.Fprintf(tw, "%s\t%s\t$%s\t%s\n", o.ID, o.Status, o.TotalAmount.StringFixed(2), o.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
