package rental

import (
	"context"
	"errors"
	"time"

	"github.com/AshishsMetkar/Movie-Rental/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// errors used by controllers

type ErrCode string

const (
	ErrCustomerNotFound ErrCode = "CUSTOMER_NOT_FOUND"
	ErrMovieNotFound    ErrCode = "MOVIE_NOT_FOUND"
	ErrRentalNotFound   ErrCode = "RENTAL_NOT_FOUND"
	ErrOutOfStock       ErrCode = "OUT_OF_STOCK"
	ErrAlreadyReturned  ErrCode = "ALREADY_RETURNED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// collaborator slices, local so tests can fake them

type Rentals interface {
	Insert(ctx context.Context, tx pgx.Tx, r *model.Rental) error
	Get(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	List(ctx context.Context) ([]model.Rental, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Rental, error)
	SetDateIn(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// Inventory is the only path the rental flow may mutate movie stock through.
type Inventory interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	DecrementStockIfAvailable(ctx context.Context, tx pgx.Tx, id uuid.UUID) (bool, error)
	IncrementStock(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type Customers interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
}

// TxRunner commits the two-store writes together or not at all.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

type Service interface {
	// Checkout creates a rental with frozen movie/customer snapshots and
	// takes one unit out of stock, atomically.
	Checkout(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error)

	// CheckIn marks a rental returned and puts the unit back, atomically.
	// A rental can be checked in once; a repeat is rejected.
	CheckIn(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error)

	// Delete removes a rental. An open rental returns its unit to stock.
	Delete(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error)

	Get(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error)
	List(ctx context.Context) ([]model.Rental, error)
}

// ----- Service implementation -----

type service struct {
	tx   TxRunner
	r    Rentals
	inv  Inventory
	cust Customers
	now  func() time.Time
}

func New(tx TxRunner, r Rentals, inv Inventory, cust Customers) Service {
	return &service{tx: tx, r: r, inv: inv, cust: cust, now: time.Now}
}

func (s *service) Checkout(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error) {
	cust, err := s.cust.Get(ctx, customerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, makeErr(ErrCustomerNotFound)
	}
	if err != nil {
		return nil, err
	}

	movie, err := s.inv.Get(ctx, movieID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, makeErr(ErrMovieNotFound)
	}
	if err != nil {
		return nil, err
	}

	// Advisory check against the pre-transaction read. The conditional
	// decrement below re-checks at commit time.
	if movie.NumberInStock == 0 {
		return nil, makeErr(ErrOutOfStock)
	}

	rental := &model.Rental{
		Movie: model.MovieSnapshot{
			ID:              movie.ID,
			Title:           movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
			NumberInStock:   movie.NumberInStock,
		},
		Customer: model.CustomerSnapshot{
			ID:    cust.ID,
			Name:  cust.Name,
			Phone: cust.Phone,
		},
		RentalFee: movie.DailyRentalRate * model.RentalPeriodDays,
		DateOut:   s.now().UTC(),
	}

	err = s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		ok, err := s.inv.DecrementStockIfAvailable(ctx, tx, movie.ID)
		if err != nil {
			return err
		}
		if !ok {
			// lost the race for the last unit
			return makeErr(ErrOutOfStock)
		}
		return s.r.Insert(ctx, tx, rental)
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *service) CheckIn(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error) {
	var out *model.Rental
	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		r, err := s.r.GetForUpdate(ctx, tx, rentalID)
		if errors.Is(err, pgx.ErrNoRows) {
			return makeErr(ErrRentalNotFound)
		}
		if err != nil {
			return err
		}
		if r.DateIn != nil {
			// checking in twice would double-increment stock
			return makeErr(ErrAlreadyReturned)
		}

		at := s.now().UTC()
		if err := s.r.SetDateIn(ctx, tx, rentalID, at); err != nil {
			return err
		}
		if err := s.inv.IncrementStock(ctx, tx, r.Movie.ID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return makeErr(ErrMovieNotFound)
			}
			return err
		}
		r.DateIn = &at
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error) {
	var out *model.Rental
	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		r, err := s.r.GetForUpdate(ctx, tx, rentalID)
		if errors.Is(err, pgx.ErrNoRows) {
			return makeErr(ErrRentalNotFound)
		}
		if err != nil {
			return err
		}

		if err := s.r.Delete(ctx, tx, rentalID); err != nil {
			return err
		}
		// Only an open rental still holds a unit of stock. A movie removed
		// from the catalog has no row to return the unit to; the rental
		// snapshot outlives it.
		if r.DateIn == nil {
			if err := s.inv.IncrementStock(ctx, tx, r.Movie.ID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error) {
	r, err := s.r.Get(ctx, rentalID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, makeErr(ErrRentalNotFound)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) List(ctx context.Context) ([]model.Rental, error) {
	return s.r.List(ctx)
}
