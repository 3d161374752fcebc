// service/movie/movie_service_test.go
package moviesvc_test

import (
	"context"
	"testing"

	"github.com/AshishsMetkar/Movie-Rental/model"
	moviesvc "github.com/AshishsMetkar/Movie-Rental/service/movie"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type repoMock struct {
	createFn func(ctx context.Context, m *model.Movie) error
	updateFn func(ctx context.Context, m *model.Movie) (bool, error)
	deleteFn func(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	listFn   func(ctx context.Context, f model.MovieFilter) ([]model.Movie, error)
	countFn  func(ctx context.Context, f model.MovieFilter) (int64, error)
}

func (m *repoMock) Create(ctx context.Context, mv *model.Movie) error { return m.createFn(ctx, mv) }
func (m *repoMock) Update(ctx context.Context, mv *model.Movie) (bool, error) {
	return m.updateFn(ctx, mv)
}
func (m *repoMock) Delete(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	return m.deleteFn(ctx, id)
}
func (m *repoMock) Get(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error) {
	return m.listFn(ctx, f)
}
func (m *repoMock) Count(ctx context.Context, f model.MovieFilter) (int64, error) {
	return m.countFn(ctx, f)
}

type genreMock struct {
	getFn func(ctx context.Context, id uuid.UUID) (*model.Genre, error)
}

func (g *genreMock) Get(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	return g.getFn(ctx, id)
}

func TestCreate_EmbedsGenreSnapshot(t *testing.T) {
	gid := uuid.New()
	gm := &genreMock{getFn: func(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
		if id != gid {
			return nil, pgx.ErrNoRows
		}
		return &model.Genre{ID: gid, Name: "Thriller"}, nil
	}}
	rm := &repoMock{createFn: func(ctx context.Context, mv *model.Movie) error {
		mv.ID = uuid.New()
		return nil
	}}
	s := moviesvc.New(rm, gm)

	m, err := s.Create(context.Background(), model.MovieReq{
		Title:           "The Terminal",
		DailyRentalRate: 8,
		NumberInStock:   7,
		GenreID:         gid.String(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.Genre.ID != gid || m.Genre.Name != "Thriller" {
		t.Fatalf("genre snapshot = %+v; want %s/Thriller", m.Genre, gid)
	}
}

func TestCreate_GenreNotFound(t *testing.T) {
	gm := &genreMock{getFn: func(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
		return nil, pgx.ErrNoRows
	}}
	s := moviesvc.New(&repoMock{}, gm)

	_, err := s.Create(context.Background(), model.MovieReq{
		Title:   "The Terminal",
		GenreID: uuid.NewString(),
	})
	if moviesvc.Code(err) != moviesvc.ErrGenreNotFound {
		t.Fatalf("got %v; want ErrGenreNotFound", err)
	}
}

func TestCreate_BadGenreID(t *testing.T) {
	s := moviesvc.New(&repoMock{}, &genreMock{})

	_, err := s.Create(context.Background(), model.MovieReq{
		Title:   "The Terminal",
		GenreID: "not-a-uuid",
	})
	if moviesvc.Code(err) != moviesvc.ErrGenreNotFound {
		t.Fatalf("got %v; want ErrGenreNotFound", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	gid := uuid.New()
	gm := &genreMock{getFn: func(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
		return &model.Genre{ID: gid, Name: "Thriller"}, nil
	}}
	rm := &repoMock{updateFn: func(ctx context.Context, mv *model.Movie) (bool, error) {
		return false, nil
	}}
	s := moviesvc.New(rm, gm)

	_, err := s.Update(context.Background(), uuid.New(), model.MovieReq{
		Title:   "The Terminal",
		GenreID: gid.String(),
	})
	if moviesvc.Code(err) != moviesvc.ErrNotFound {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}

func TestPassThroughs(t *testing.T) {
	rm := &repoMock{
		listFn: func(ctx context.Context, f model.MovieFilter) ([]model.Movie, error) {
			return []model.Movie{{Title: "The Terminal"}}, nil
		},
		countFn: func(ctx context.Context, f model.MovieFilter) (int64, error) { return 7, nil },
	}
	s := moviesvc.New(rm, &genreMock{})

	rows, err := s.List(context.Background(), model.MovieFilter{})
	if err != nil || len(rows) != 1 {
		t.Fatalf("List got %v %v; want one row", rows, err)
	}
	if n, err := s.Count(context.Background(), model.MovieFilter{}); err != nil || n != 7 {
		t.Fatalf("Count got %v %v; want 7 nil", n, err)
	}
}
