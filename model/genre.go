package model

import "github.com/google/uuid"

type Genre struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type GenreReq struct {
	Name string `json:"name" validate:"required,min=5,max=50"`
}
