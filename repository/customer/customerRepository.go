package customerrepo

import (
	"context"

	"github.com/AshishsMetkar/Movie-Rental/model"
	"github.com/AshishsMetkar/Movie-Rental/util/database"

	"github.com/google/uuid"
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO customers(name, phone, is_gold)
		VALUES ($1,$2,$3)
		RETURNING id`,
		c.Name, c.Phone, c.IsGold,
	).Scan(&c.ID)
}

func (r *repo) Update(ctx context.Context, c *model.Customer) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE customers
		SET name=$2, phone=$3, is_gold=$4
		WHERE id=$1`,
		c.ID, c.Name, c.Phone, c.IsGold)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c := &model.Customer{}
	err := r.db.Pool.QueryRow(ctx, `
		DELETE FROM customers WHERE id=$1
		RETURNING id, name, phone, is_gold`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c := &model.Customer{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name, phone, is_gold
		FROM customers
		WHERE id=$1`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, phone, is_gold
		FROM customers
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
