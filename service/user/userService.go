package usersvc

import (
	"context"
	"errors"
	"strings"

	"github.com/AshishsMetkar/Movie-Rental/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("user not found")

type Repo interface {
	ByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u *model.User) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateUserReq) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.r.ByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) List(ctx context.Context) ([]model.User, error) {
	return s.r.List(ctx)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req model.UpdateUserReq) (*model.User, error) {
	u := &model.User{
		ID:      id,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		IsAdmin: req.IsAdmin,
	}
	ok, err := s.r.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.r.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
