package rentalrepo

import (
	"context"
	"time"

	"github.com/AshishsMetkar/Movie-Rental/model"
	"github.com/AshishsMetkar/Movie-Rental/util/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repo interface {
	// Insert persists a new rental inside the checkout transaction.
	Insert(ctx context.Context, tx pgx.Tx, r *model.Rental) error

	Get(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	List(ctx context.Context) ([]model.Rental, error)

	// GetForUpdate locks the rental row so concurrent check-ins and deletes
	// of the same rental serialize.
	GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Rental, error)
	SetDateIn(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const rentalCols = `id,
	movie_id, movie_title, movie_daily_rental_rate, movie_number_in_stock,
	customer_id, customer_name, customer_phone,
	rental_fee, date_out, date_in`

func scanRental(row pgx.Row, m *model.Rental) error {
	return row.Scan(&m.ID,
		&m.Movie.ID, &m.Movie.Title, &m.Movie.DailyRentalRate, &m.Movie.NumberInStock,
		&m.Customer.ID, &m.Customer.Name, &m.Customer.Phone,
		&m.RentalFee, &m.DateOut, &m.DateIn)
}

func (r *repo) Insert(ctx context.Context, tx pgx.Tx, m *model.Rental) error {
	return tx.QueryRow(ctx, `
		INSERT INTO rentals(
			movie_id, movie_title, movie_daily_rental_rate, movie_number_in_stock,
			customer_id, customer_name, customer_phone,
			rental_fee, date_out)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id`,
		m.Movie.ID, m.Movie.Title, m.Movie.DailyRentalRate, m.Movie.NumberInStock,
		m.Customer.ID, m.Customer.Name, m.Customer.Phone,
		m.RentalFee, m.DateOut,
	).Scan(&m.ID)
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	m := &model.Rental{}
	err := scanRental(r.db.Pool.QueryRow(ctx, `
		SELECT `+rentalCols+` FROM rentals WHERE id=$1`, id), m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) List(ctx context.Context) ([]model.Rental, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+rentalCols+`
		FROM rentals
		ORDER BY date_out DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		var m model.Rental
		if err := scanRental(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *repo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Rental, error) {
	m := &model.Rental{}
	err := scanRental(tx.QueryRow(ctx, `
		SELECT `+rentalCols+`
		FROM rentals
		WHERE id=$1
		FOR UPDATE`, id), m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) SetDateIn(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE rentals
		SET date_in = $2
		WHERE id = $1`, id, at)
	return err
}

func (r *repo) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	_, err := tx.Exec(ctx, `DELETE FROM rentals WHERE id=$1`, id)
	return err
}
