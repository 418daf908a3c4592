package vegetable

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

const selectColumns = `id, name, category, description, price::text, unit, stock, rating`

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scan(row pgx.Row) (*Vegetable, error) {
	var v Vegetable
	var price string
	if err := row.Scan(&v.ID, &v.Name, &v.Category, &v.Description, &price, &v.Unit, &v.Stock, &v.Rating); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, apperr.Storage("failed to read vegetables", err)
	}
	p, err := money.Parse(price)
	if err != nil {
		return nil, apperr.Storage("failed to read vegetables", fmt.Errorf("price %q: %w", price, err))
	}
	v.Price = p
	return &v, nil
}

func getByID(ctx context.Context, q rowQuerier, id string, forUpdate bool) (*Vegetable, error) {
	sql := `SELECT ` + selectColumns + ` FROM vegetables WHERE id=$1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}
	return scan(q.QueryRow(ctx, sql, id))
}

func (r *PGRepo) List(ctx context.Context) ([]Vegetable, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+selectColumns+` FROM vegetables ORDER BY created_at, id`)
	if err != nil {
		return nil, apperr.Storage("failed to read vegetables", err)
	}
	defer rows.Close()

	out := []Vegetable{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("failed to read vegetables", err)
	}
	return out, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Vegetable, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return getByID(ctx, r.db, id, false)
}

func (r *PGRepo) Create(ctx context.Context, v *Vegetable) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if v.ID == "" {
		v.ID = NewID()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO vegetables (id, name, category, description, price, unit, stock, rating, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW())
	`, v.ID, v.Name, v.Category, v.Description, v.Price.String(), v.Unit, v.Stock, v.Rating)
	if err != nil {
		return apperr.Storage("failed to add vegetable", err)
	}
	return nil
}

func (r *PGRepo) Update(ctx context.Context, id string, req UpdateRequest) (*Vegetable, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, apperr.Storage("failed to update vegetable", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	v, err := getByID(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}
	req.Apply(v)
	if _, err := tx.Exec(ctx, `
		UPDATE vegetables
		SET name=$2, category=$3, description=$4, price=$5, unit=$6, stock=$7, rating=$8
		WHERE id=$1
	`, v.ID, v.Name, v.Category, v.Description, v.Price.String(), v.Unit, v.Stock, v.Rating); err != nil {
		return nil, apperr.Storage("failed to update vegetable", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.Storage("failed to update vegetable", err)
	}
	return v, nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM vegetables WHERE id=$1`, id)
	if err != nil {
		return false, apperr.Storage("failed to delete vegetable", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetForUpdate reads one vegetable inside tx and row-locks it until the
// transaction ends.
func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Vegetable, error) {
	return getByID(ctx, tx, id, true)
}

func SetStock(ctx context.Context, tx pgx.Tx, id string, stock int) error {
	if _, err := tx.Exec(ctx, `UPDATE vegetables SET stock=$2 WHERE id=$1`, id, stock); err != nil {
		return apperr.Storage("failed to update stock", err)
	}
	return nil
}
