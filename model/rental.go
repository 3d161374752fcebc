package model

import (
	"time"

	"github.com/google/uuid"
)

// RentalPeriodDays is the fixed rental period the fee is charged for.
const RentalPeriodDays = 10

// MovieSnapshot is the slice of the movie frozen into a rental at checkout.
// Editing or deleting the movie afterwards does not touch it.
type MovieSnapshot struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	DailyRentalRate float64   `json:"daily_rental_rate"`
	NumberInStock   int64     `json:"number_in_stock"`
}

type CustomerSnapshot struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// Rental is one checkout-to-return cycle. DateIn == nil means the movie is
// still out, i.e. one unit of the referenced movie is withdrawn from stock.
type Rental struct {
	ID        uuid.UUID        `json:"id"`
	Movie     MovieSnapshot    `json:"movie"`
	Customer  CustomerSnapshot `json:"customer"`
	RentalFee float64          `json:"rental_fee"`
	DateOut   time.Time        `json:"date_out"`
	DateIn    *time.Time       `json:"date_in,omitempty"`
}

type CreateRentalReq struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	MovieID    string `json:"movie_id" validate:"required,uuid"`
}
