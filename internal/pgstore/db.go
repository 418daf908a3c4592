// Package pgstore opens the PostgreSQL pool and creates the schema used by
// the Postgres repositories.
package pgstore

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgstore: open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgstore: ping: %w", err)
	}
	return pool, nil
}

// Email is deliberately not UNIQUE: uniqueness is checked at registration
// only and profile updates may collide. Money columns are unscaled NUMERIC
// and keep amounts exact. The ALTERs widen tables created with a fixed scale.
const schema = `
CREATE TABLE IF NOT EXISTS vegetables (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	price       NUMERIC NOT NULL DEFAULT 0,
	unit        TEXT NOT NULL DEFAULT '',
	stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	rating      DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS customers (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	email        TEXT NOT NULL,
	phone        TEXT NOT NULL,
	address      TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	total_orders INTEGER NOT NULL DEFAULT 0,
	total_spent  NUMERIC NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS customers_email_idx ON customers (lower(email));

CREATE TABLE IF NOT EXISTS orders (
	id                 TEXT PRIMARY KEY,
	customer_id        TEXT NOT NULL,
	total_amount       NUMERIC NOT NULL,
	delivery_address   TEXT NOT NULL DEFAULT '',
	phone              TEXT NOT NULL DEFAULT '',
	status             TEXT NOT NULL,
	created_at         TIMESTAMPTZ NOT NULL,
	estimated_delivery TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS orders_customer_idx ON orders (customer_id);

CREATE TABLE IF NOT EXISTS order_items (
	order_id     TEXT NOT NULL REFERENCES orders(id),
	position     INTEGER NOT NULL,
	vegetable_id TEXT NOT NULL,
	name         TEXT NOT NULL DEFAULT '',
	quantity     INTEGER NOT NULL CHECK (quantity > 0),
	price        NUMERIC NOT NULL,
	PRIMARY KEY (order_id, position)
);

ALTER TABLE vegetables  ALTER COLUMN price        TYPE NUMERIC;
ALTER TABLE customers   ALTER COLUMN total_spent  TYPE NUMERIC;
ALTER TABLE orders      ALTER COLUMN total_amount TYPE NUMERIC;
ALTER TABLE order_items ALTER COLUMN price        TYPE NUMERIC;
`

func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Printf("[pgstore] schema error: %v", err)
		return fmt.Errorf("pgstore: init schema: %w", err)
	}
	return nil
}
