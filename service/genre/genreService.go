package genresvc

import (
	"context"
	"errors"

	"github.com/AshishsMetkar/Movie-Rental/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("genre not found")

type Repo interface {
	Create(ctx context.Context, name string) (*model.Genre, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	List(ctx context.Context, limit, offset int) ([]model.Genre, error)
	Count(ctx context.Context) (int64, error)
}

type Service interface {
	Create(ctx context.Context, name string) (*model.Genre, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	List(ctx context.Context, page, pageSize int) ([]model.Genre, error)
	Count(ctx context.Context) (int64, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

const defaultPageSize = 20

func (s *service) Create(ctx context.Context, name string) (*model.Genre, error) {
	return s.r.Create(ctx, name)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, name string) (*model.Genre, error) {
	g, err := s.r.Update(ctx, id, name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	g, err := s.r.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	g, err := s.r.Get(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) List(ctx context.Context, page, pageSize int) ([]model.Genre, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		page = 1
	}
	return s.r.List(ctx, pageSize, (page-1)*pageSize)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.r.Count(ctx)
}
