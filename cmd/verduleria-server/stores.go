package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/MikeMC777/verduleria-ecom/internal/checkout"
	"github.com/MikeMC777/verduleria-ecom/internal/config"
	"github.com/MikeMC777/verduleria-ecom/internal/customer"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
	"github.com/MikeMC777/verduleria-ecom/internal/pgstore"
	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

type stores struct {
	vegetables vegetable.Repository
	customers  customer.Repository
	orders     order.Repository
	ledger     checkout.Ledger
	close      func()
}

func openStores(ctx context.Context, cfg config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := pgstore.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := pgstore.InitSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Printf("[store] postgres ready")
		return &stores{
			vegetables: vegetable.NewPGRepo(pool),
			customers:  customer.NewPGRepo(pool),
			orders:     order.NewPGRepo(pool),
			ledger:     checkout.NewPGLedger(pool),
			close:      pool.Close,
		}, nil
	case config.DriverFile:
		return openFileStores(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openFileStores(dir string) (*stores, error) {
	v, err := vegetable.OpenFileRepo(filepath.Join(dir, "vegetables.json"))
	if err != nil {
		return nil, err
	}
	c, err := customer.OpenFileRepo(filepath.Join(dir, "customers.json"))
	if err != nil {
		return nil, err
	}
	o, err := order.OpenFileRepo(filepath.Join(dir, "orders.json"))
	if err != nil {
		return nil, err
	}
	log.Printf("[store] json files in %s", dir)
	return &stores{
		vegetables: v,
		customers:  c,
		orders:     o,
		ledger:     checkout.NewFileLedger(v, c, o),
		close:      func() {},
	}, nil
}

func newPublisher(url string) order.Publisher {
	if url == "" {
		log.Printf("[events] NATS_URL not set, order events disabled")
		return order.NoopPublisher{}
	}
	p, err := order.NewNatsPublisher(url)
	if err != nil {
		log.Printf("[events] continuing without order events err=%v", err)
		return order.NoopPublisher{}
	}
	return p
}
