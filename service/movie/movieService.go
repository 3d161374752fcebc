package moviesvc

import (
	"context"
	"errors"

	"github.com/AshishsMetkar/Movie-Rental/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ErrCode string

const (
	ErrNotFound      ErrCode = "MOVIE_NOT_FOUND"
	ErrGenreNotFound ErrCode = "GENRE_NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	Create(ctx context.Context, m *model.Movie) error
	Update(ctx context.Context, m *model.Movie) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error)
	Count(ctx context.Context, f model.MovieFilter) (int64, error)
}

type Genres interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Genre, error)
}

type Service interface {
	Create(ctx context.Context, req model.MovieReq) (*model.Movie, error)
	Update(ctx context.Context, id uuid.UUID, req model.MovieReq) (*model.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error)
	Count(ctx context.Context, f model.MovieFilter) (int64, error)
}

type service struct {
	r  Repo
	gr Genres
}

func New(r Repo, gr Genres) Service { return &service{r: r, gr: gr} }

// resolveGenre snapshots the referenced genre into the movie row.
func (s *service) resolveGenre(ctx context.Context, rawID string) (*model.GenreRef, error) {
	gid, err := uuid.Parse(rawID)
	if err != nil {
		return nil, makeErr(ErrGenreNotFound)
	}
	g, err := s.gr.Get(ctx, gid)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, makeErr(ErrGenreNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &model.GenreRef{ID: g.ID, Name: g.Name}, nil
}

func (s *service) Create(ctx context.Context, req model.MovieReq) (*model.Movie, error) {
	genre, err := s.resolveGenre(ctx, req.GenreID)
	if err != nil {
		return nil, err
	}
	m := &model.Movie{
		Title:           req.Title,
		DailyRentalRate: req.DailyRentalRate,
		NumberInStock:   req.NumberInStock,
		Genre:           *genre,
		Liked:           req.Liked,
	}
	if err := s.r.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req model.MovieReq) (*model.Movie, error) {
	genre, err := s.resolveGenre(ctx, req.GenreID)
	if err != nil {
		return nil, err
	}
	m := &model.Movie{
		ID:              id,
		Title:           req.Title,
		DailyRentalRate: req.DailyRentalRate,
		NumberInStock:   req.NumberInStock,
		Genre:           *genre,
		Liked:           req.Liked,
	}
	ok, err := s.r.Update(ctx, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrNotFound)
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	m, err := s.r.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, makeErr(ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	m, err := s.r.Get(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, makeErr(ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error) {
	return s.r.List(ctx, f)
}

func (s *service) Count(ctx context.Context, f model.MovieFilter) (int64, error) {
	return s.r.Count(ctx, f)
}
