package movie

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AshishsMetkar/Movie-Rental/model"
	moviesvc "github.com/AshishsMetkar/Movie-Rental/service/movie"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc moviesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func isAdmin(c echo.Context) bool {
	admin, _ := c.Get("is_admin").(bool)
	return admin
}

func filterFromQuery(c echo.Context) model.MovieFilter {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	return model.MovieFilter{
		GenreName:   c.QueryParam("genre"),
		TitlePrefix: c.QueryParam("title"),
		Page:        page,
		PageSize:    pageSize,
		SortBy:      c.QueryParam("sort_by"),
		SortDesc:    c.QueryParam("order") == "desc",
	}
}

// GET /v1/movies?genre=&title=&page=&page_size=&sort_by=&order=
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		h.Log.Error("movie list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/movies/count?genre=&title=
func (h *Controller) Count(c echo.Context) error {
	n, err := h.Svc.Count(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		h.Log.Error("movie count", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"total_movies": n})
}

// GET /v1/movies/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	m, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if moviesvc.Code(err) == moviesvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		}
		h.Log.Error("movie detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, m)
}

// POST /v1/movies
// @Summary      Create movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        payload  body  model.MovieReq  true  "Movie payload"
// @Success      201  {object}  model.Movie
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "genre not found"
// @Security     BearerAuth
// @Router       /v1/movies [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.MovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"title": "min 5, max 50", "daily_rental_rate": "gte 0", "number_in_stock": "gte 0", "genre_id": "uuid"},
		})
	}
	m, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		if moviesvc.Code(err) == moviesvc.ErrGenreNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "genre not found"})
		}
		h.Log.Error("movie create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, m)
}

// PUT /v1/movies/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.MovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	m, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		switch moviesvc.Code(err) {
		case moviesvc.ErrGenreNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "genre not found"})
		case moviesvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		default:
			h.Log.Error("movie update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, m)
}

// DELETE /v1/movies/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	m, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		if moviesvc.Code(err) == moviesvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		}
		h.Log.Error("movie delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, m)
}
