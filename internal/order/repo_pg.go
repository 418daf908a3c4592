package order

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

const selectColumns = `id, customer_id, total_amount::text, delivery_address, phone, status, created_at, estimated_delivery`

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperr.Storage("failed to place order", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := Insert(ctx, tx, o); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperr.Storage("failed to place order", err)
	}
	return nil
}

// Insert writes o and its lines inside tx.
func Insert(ctx context.Context, tx pgx.Tx, o *Order) error {
	if _, err := tx.Exec(ctx, `
		INSERT INTO orders (id, customer_id, total_amount, delivery_address, phone, status, created_at, estimated_delivery)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, o.ID, o.CustomerID, o.TotalAmount.String(), o.DeliveryAddress, o.Phone, o.Status, o.CreatedAt, o.EstimatedDelivery); err != nil {
		return apperr.Storage("failed to place order", err)
	}
	for i, it := range o.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, position, vegetable_id, name, quantity, price)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, o.ID, i, it.VegetableID, it.Name, it.Quantity, it.Price.String()); err != nil {
			return apperr.Storage("failed to place order", err)
		}
	}
	return nil
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var total string
	if err := row.Scan(&o.ID, &o.CustomerID, &total, &o.DeliveryAddress, &o.Phone, &o.Status, &o.CreatedAt, &o.EstimatedDelivery); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, apperr.Storage("failed to read orders", err)
	}
	v, err := money.Parse(total)
	if err != nil {
		return nil, apperr.Storage("failed to read orders", fmt.Errorf("total_amount %q: %w", total, err))
	}
	o.TotalAmount = v
	o.Items = []Item{}
	return &o, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, []*Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	return r.query(ctx, `SELECT `+selectColumns+` FROM orders ORDER BY created_at, id`)
}

func (r *PGRepo) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	return r.query(ctx, `SELECT `+selectColumns+` FROM orders WHERE customer_id=$1 ORDER BY created_at, id`, customerID)
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id, status string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return nil, apperr.Storage("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PGRepo) query(ctx context.Context, sql string, args ...any) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperr.Storage("failed to read orders", err)
	}
	var list []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		list = append(list, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("failed to read orders", err)
	}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}

	out := make([]Order, 0, len(list))
	for _, o := range list {
		out = append(out, *o)
	}
	return out, nil
}

func (r *PGRepo) attachItems(ctx context.Context, orders []*Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT order_id, vegetable_id, name, quantity, price::text
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`, ids)
	if err != nil {
		return apperr.Storage("failed to read orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, price string
		var it Item
		if err := rows.Scan(&orderID, &it.VegetableID, &it.Name, &it.Quantity, &price); err != nil {
			return apperr.Storage("failed to read orders", err)
		}
		p, err := money.Parse(price)
		if err != nil {
			return apperr.Storage("failed to read orders", fmt.Errorf("price %q: %w", price, err))
		}
		it.Price = p
		if o := byID[orderID]; o != nil {
			o.Items = append(o.Items, it)
		}
	}
	if err := rows.Err(); err != nil {
		return apperr.Storage("failed to read orders", err)
	}
	return nil
}
