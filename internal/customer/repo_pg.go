package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/money"
)

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const selectColumns = `id, name, email, phone, address, created_at, total_orders, total_spent::text`

func scan(row pgx.Row) (*Customer, error) {
	var c Customer
	var spent string
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.TotalOrders, &spent); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, apperr.Storage("failed to read customers", err)
	}
	v, err := money.Parse(spent)
	if err != nil {
		return nil, apperr.Storage("failed to read customers", fmt.Errorf("total_spent %q: %w", spent, err))
	}
	c.TotalSpent = v
	return &c, nil
}

// Create inserts c only when no customer shares its email. Email is not a
// UNIQUE column because profile updates may reuse an address, so concurrent
// registrations serialize on an advisory lock keyed by the lowered email.
func (r *PGRepo) Create(ctx context.Context, c *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.Storage("failed to register customer", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext(lower($1::text)))`, c.Email); err != nil {
		return apperr.Storage("failed to register customer", err)
	}
	tag, err := tx.Exec(ctx, `
		INSERT INTO customers (id, name, email, phone, address, created_at, total_orders, total_spent)
		SELECT $1::text, $2::text, $3::text, $4::text, $5::text, $6::timestamptz, 0, 0
		WHERE NOT EXISTS (SELECT 1 FROM customers WHERE lower(email) = lower($3::text))
	`, c.ID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt)
	if err != nil {
		return apperr.Storage("failed to register customer", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyExist
	}
	if err := tx.Commit(ctx); err != nil {
		return apperr.Storage("failed to register customer", err)
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scan(r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM customers WHERE id=$1`, id))
}

func (r *PGRepo) Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// NULL keeps the stored value.
	row := r.db.QueryRow(ctx, `
		UPDATE customers
		SET name    = COALESCE($2, name),
		    email   = COALESCE($3, email),
		    phone   = COALESCE($4, phone),
		    address = COALESCE($5, address)
		WHERE id = $1
		RETURNING `+selectColumns, id, req.Name, req.Email, req.Phone, req.Address)
	return scan(row)
}

func (r *PGRepo) List(ctx context.Context) ([]Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+selectColumns+` FROM customers ORDER BY created_at, id`)
	if err != nil {
		return nil, apperr.Storage("failed to read customers", err)
	}
	defer rows.Close()

	out := []Customer{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("failed to read customers", err)
	}
	return out, nil
}

// RecordPurchase bumps the counters of id inside tx. It reports false when
// the customer is not registered.
func RecordPurchase(ctx context.Context, tx pgx.Tx, id string, total money.Amount) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE customers
		SET total_orders = total_orders + 1,
		    total_spent  = total_spent + $2
		WHERE id = $1
	`, id, total.String())
	if err != nil {
		return false, apperr.Storage("failed to update customer", err)
	}
	return tag.RowsAffected() > 0, nil
}
