package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AshishsMetkar/Movie-Rental/model"
	usersvc "github.com/AshishsMetkar/Movie-Rental/service/user"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc usersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func isAdmin(c echo.Context) bool {
	admin, _ := c.Get("is_admin").(bool)
	return admin
}

// GET /v1/users
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("user list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/users/me
func (h *Controller) Me(c echo.Context) error {
	uid, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	u, err := h.Svc.Get(c.Request().Context(), uid)
	if errors.Is(err, usersvc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}
	if err != nil {
		h.Log.Error("user me", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, u)
}

// GET /v1/users/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	u, err := h.Svc.Get(c.Request().Context(), id)
	if errors.Is(err, usersvc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}
	if err != nil {
		h.Log.Error("user detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, u)
}

// PUT /v1/users/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.UpdateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	u, err := h.Svc.Update(c.Request().Context(), id, req)
	if errors.Is(err, usersvc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}
	if err != nil {
		h.Log.Error("user update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, u)
}

// DELETE /v1/users/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	u, err := h.Svc.Delete(c.Request().Context(), id)
	if errors.Is(err, usersvc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}
	if err != nil {
		h.Log.Error("user delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, u)
}
