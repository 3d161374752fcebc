package model

import "github.com/google/uuid"

// GenreRef is the denormalized genre carried on a movie. It is copied from
// the genre at write time and not kept in sync afterwards.
type GenreRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Movie struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	DailyRentalRate float64   `json:"daily_rental_rate"`
	NumberInStock   int64     `json:"number_in_stock"`
	Genre           GenreRef  `json:"genre"`
	Liked           bool      `json:"liked"`
}

type MovieReq struct {
	Title           string  `json:"title" validate:"required,min=5,max=50"`
	DailyRentalRate float64 `json:"daily_rental_rate" validate:"gte=0"`
	NumberInStock   int64   `json:"number_in_stock" validate:"gte=0"`
	GenreID         string  `json:"genre_id" validate:"required,uuid"`
	Liked           bool    `json:"liked"`
}

// MovieFilter narrows and pages a movie listing.
type MovieFilter struct {
	GenreName   string
	TitlePrefix string
	Page        int
	PageSize    int
	SortBy      string // title | daily_rental_rate | number_in_stock
	SortDesc    bool
}
