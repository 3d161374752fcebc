package genrerepo

import (
	"context"

	"github.com/AshishsMetkar/Movie-Rental/model"
	"github.com/AshishsMetkar/Movie-Rental/util/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repo interface {
	Create(ctx context.Context, name string) (*model.Genre, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	List(ctx context.Context, limit, offset int) ([]model.Genre, error)
	Count(ctx context.Context) (int64, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, name string) (*model.Genre, error) {
	g := &model.Genre{Name: name}
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO genres(name)
		VALUES ($1)
		RETURNING id`, name,
	).Scan(&g.ID)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, name string) (*model.Genre, error) {
	g := &model.Genre{ID: id, Name: name}
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE genres SET name=$2 WHERE id=$1`, id, name)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return g, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	g := &model.Genre{}
	err := r.db.Pool.QueryRow(ctx, `
		DELETE FROM genres WHERE id=$1
		RETURNING id, name`, id,
	).Scan(&g.ID, &g.Name)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	g := &model.Genre{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name FROM genres WHERE id=$1`, id,
	).Scan(&g.ID, &g.Name)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repo) List(ctx context.Context, limit, offset int) ([]model.Genre, error) {
	const q = `
		SELECT id, name
		FROM genres
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&n)
	return n, err
}
