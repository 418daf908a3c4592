// Command storefront is a terminal shop front for the verdulería API:
// browse the catalog, keep a cart, and check out through the API or a
// WhatsApp message.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/MikeMC777/verduleria-ecom/internal/config"
	"github.com/MikeMC777/verduleria-ecom/internal/storefront"
)

func main() {
	cfg := config.LoadClient()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	st, err := storefront.NewFileStorage(cfg.StateDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	a := &app{
		api:     storefront.NewClient(cfg.APIURL),
		storage: st,
		mode:    storefront.Mode(cfg.CheckoutMode),
		waNum:   cfg.WhatsAppNumber,
		out:     os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := a.run(ctx, os.Args[1:]); err != nil {
		var apiErr *storefront.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", apiErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
