package customersvc

import (
	"context"
	"errors"

	"github.com/AshishsMetkar/Movie-Rental/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("customer not found")

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

type Service interface {
	Create(ctx context.Context, req model.CustomerReq) (*model.Customer, error)
	Update(ctx context.Context, id uuid.UUID, req model.CustomerReq) (*model.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, req model.CustomerReq) (*model.Customer, error) {
	c := &model.Customer{Name: req.Name, Phone: req.Phone, IsGold: req.IsGold}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req model.CustomerReq) (*model.Customer, error) {
	c := &model.Customer{ID: id, Name: req.Name, Phone: req.Phone, IsGold: req.IsGold}
	ok, err := s.r.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c, err := s.r.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c, err := s.r.Get(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]model.Customer, error) {
	return s.r.List(ctx)
}
