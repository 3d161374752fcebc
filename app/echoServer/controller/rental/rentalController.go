package rental

import (
	"log/slog"
	"net/http"

	"github.com/AshishsMetkar/Movie-Rental/model"
	rs "github.com/AshishsMetkar/Movie-Rental/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

func isAdmin(c echo.Context) bool {
	admin, _ := c.Get("is_admin").(bool)
	return admin
}

// GET /v1/rentals
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/rentals/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	r, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if rs.Code(err) == rs.ErrRentalNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		}
		h.Log.Error("rental detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, r)
}

// POST /v1/rentals
// @Summary      Checkout
// @Description  Rent a movie to a customer; decrements stock atomically
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        payload  body  model.CreateRentalReq  true  "Checkout payload"
// @Success      200  {object}  model.Rental
// @Failure      400  {object}  map[string]any "validation failure or out of stock"
// @Failure      404  {object}  map[string]any "customer or movie missing"
// @Security     BearerAuth
// @Router       /v1/rentals [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"customer_id": "required uuid", "movie_id": "required uuid"},
		})
	}

	// format already checked by the validator
	customerID := uuid.MustParse(req.CustomerID)
	movieID := uuid.MustParse(req.MovieID)

	r, err := h.Svc.Checkout(c.Request().Context(), customerID, movieID)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrCustomerNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case rs.ErrMovieNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		case rs.ErrOutOfStock:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "movie out of stock"})
		default:
			h.Log.Error("rental checkout", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, r)
}

// POST /v1/rentals/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	r, err := h.Svc.CheckIn(c.Request().Context(), id)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrRentalNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		case rs.ErrMovieNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		case rs.ErrAlreadyReturned:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "rental already returned"})
		default:
			h.Log.Error("rental return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, r)
}

// DELETE /v1/rentals/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	r, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		if rs.Code(err) == rs.ErrRentalNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		}
		h.Log.Error("rental delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, r)
}
