package genre

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AshishsMetkar/Movie-Rental/model"
	genresvc "github.com/AshishsMetkar/Movie-Rental/service/genre"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc genresvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func isAdmin(c echo.Context) bool {
	admin, _ := c.Get("is_admin").(bool)
	return admin
}

// GET /v1/genres
func (h *Controller) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	rows, err := h.Svc.List(c.Request().Context(), page, pageSize)
	if err != nil {
		h.Log.Error("genre list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/genres/count
func (h *Controller) Count(c echo.Context) error {
	n, err := h.Svc.Count(c.Request().Context())
	if err != nil {
		h.Log.Error("genre count", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"total_genres": n})
}

// GET /v1/genres/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	g, err := h.Svc.Get(c.Request().Context(), id)
	if errors.Is(err, genresvc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "genre not found"})
	}
	if err != nil {
		h.Log.Error("genre detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, g)
}

// POST /v1/genres
func (h *Controller) Create(c echo.Context) error {
	var req model.GenreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"name": "min 5, max 50"},
		})
	}
	g, err := h.Svc.Create(c.Request().Context(), req.Name)
	if err != nil {
		h.Log.Error("genre create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, g)
}

// PUT /v1/genres/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.GenreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	g, err := h.Svc.Update(c.Request().Context(), id, req.Name)
	if errors.Is(err, genresvc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "genre not found"})
	}
	if err != nil {
		h.Log.Error("genre update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, g)
}

// DELETE /v1/genres/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	g, err := h.Svc.Delete(c.Request().Context(), id)
	if errors.Is(err, genresvc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "genre not found"})
	}
	if err != nil {
		h.Log.Error("genre delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, g)
}
