package customer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AshishsMetkar/Movie-Rental/model"
	customersvc "github.com/AshishsMetkar/Movie-Rental/service/customer"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc customersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func isAdmin(c echo.Context) bool {
	admin, _ := c.Get("is_admin").(bool)
	return admin
}

// GET /v1/customers
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("customer list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/customers/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	cust, err := h.Svc.Get(c.Request().Context(), id)
	if errors.Is(err, customersvc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
	}
	if err != nil {
		h.Log.Error("customer detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// POST /v1/customers
// @Summary      Create customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body  model.CustomerReq  true  "Customer payload"
// @Success      201  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/customers [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.CustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"name": "min 5, max 50", "phone": "min 7, max 10"},
		})
	}
	cust, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("customer create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, cust)
}

// PUT /v1/customers/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.CustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	cust, err := h.Svc.Update(c.Request().Context(), id, req)
	if errors.Is(err, customersvc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
	}
	if err != nil {
		h.Log.Error("customer update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// DELETE /v1/customers/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	cust, err := h.Svc.Delete(c.Request().Context(), id)
	if errors.Is(err, customersvc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
	}
	if err != nil {
		h.Log.Error("customer delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cust)
}
