package movierepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/AshishsMetkar/Movie-Rental/model"
	"github.com/AshishsMetkar/Movie-Rental/util/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repo interface {
	Create(ctx context.Context, m *model.Movie) error
	Update(ctx context.Context, m *model.Movie) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error)
	Count(ctx context.Context, f model.MovieFilter) (int64, error)

	// Stock mutations. Only the rental service calls these, and only inside
	// a transaction alongside the rental write.
	DecrementStockIfAvailable(ctx context.Context, tx pgx.Tx, id uuid.UUID) (bool, error)
	IncrementStock(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const movieCols = `id, title, daily_rental_rate, number_in_stock, genre_id, genre_name, liked`

func scanMovie(row pgx.Row, m *model.Movie) error {
	return row.Scan(&m.ID, &m.Title, &m.DailyRentalRate, &m.NumberInStock,
		&m.Genre.ID, &m.Genre.Name, &m.Liked)
}

func (r *repo) Create(ctx context.Context, m *model.Movie) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO movies(title, daily_rental_rate, number_in_stock, genre_id, genre_name, liked)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		m.Title, m.DailyRentalRate, m.NumberInStock, m.Genre.ID, m.Genre.Name, m.Liked,
	).Scan(&m.ID)
}

func (r *repo) Update(ctx context.Context, m *model.Movie) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE movies
		SET title=$2, daily_rental_rate=$3, number_in_stock=$4,
		    genre_id=$5, genre_name=$6, liked=$7
		WHERE id=$1`,
		m.ID, m.Title, m.DailyRentalRate, m.NumberInStock,
		m.Genre.ID, m.Genre.Name, m.Liked)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	m := &model.Movie{}
	err := scanMovie(r.db.Pool.QueryRow(ctx, `
		DELETE FROM movies WHERE id=$1
		RETURNING `+movieCols, id), m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	m := &model.Movie{}
	err := scanMovie(r.db.Pool.QueryRow(ctx, `
		SELECT `+movieCols+` FROM movies WHERE id=$1`, id), m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// sortable whitelists the ORDER BY targets so the filter can never inject SQL.
var sortable = map[string]string{
	"title":             "title",
	"daily_rental_rate": "daily_rental_rate",
	"number_in_stock":   "number_in_stock",
}

func filterClause(f model.MovieFilter) (string, []any) {
	var conds []string
	var args []any
	if f.GenreName != "" {
		args = append(args, f.GenreName)
		conds = append(conds, fmt.Sprintf("genre_name = $%d", len(args)))
	}
	if f.TitlePrefix != "" {
		args = append(args, f.TitlePrefix+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *repo) List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error) {
	where, args := filterClause(f)

	order := "title"
	if col, ok := sortable[f.SortBy]; ok {
		order = col
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}

	q := `SELECT ` + movieCols + ` FROM movies` + where +
		fmt.Sprintf(" ORDER BY %s %s", order, dir)
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		args = append(args, f.PageSize, (page-1)*f.PageSize)
		q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Movie
	for rows.Next() {
		var m model.Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *repo) Count(ctx context.Context, f model.MovieFilter) (int64, error) {
	where, args := filterClause(f)
	var n int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM movies`+where, args...).Scan(&n)
	return n, err
}

// DecrementStockIfAvailable takes one unit out of stock, but only while stock
// is still positive at commit time. The conditional UPDATE is what closes the
// race between two checkouts of the last unit.
func (r *repo) DecrementStockIfAvailable(ctx context.Context, tx pgx.Tx, id uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE movies
		SET number_in_stock = number_in_stock - 1
		WHERE id = $1
		AND number_in_stock > 0`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) IncrementStock(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE movies
		SET number_in_stock = number_in_stock + 1
		WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
