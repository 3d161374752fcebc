package model

import "github.com/google/uuid"

type Customer struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	IsGold bool      `json:"is_gold"`
}

type CustomerReq struct {
	Name   string `json:"name" validate:"required,min=5,max=50"`
	Phone  string `json:"phone" validate:"required,min=7,max=10"`
	IsGold bool   `json:"is_gold"`
}
