package echoServer

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	rentalctrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/rental"
	"github.com/AshishsMetkar/Movie-Rental/model"
	rentalsvc "github.com/AshishsMetkar/Movie-Rental/service/rental"
	jwtutil "github.com/AshishsMetkar/Movie-Rental/util/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "route-test-secret"

// stubRentalSvc returns canned values so the tests exercise only the
// boundary: auth, id format, status mapping.
type stubRentalSvc struct {
	checkoutErr error
	deleteErr   error
}

func (s *stubRentalSvc) Checkout(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error) {
	if s.checkoutErr != nil {
		return nil, s.checkoutErr
	}
	return &model.Rental{ID: uuid.New()}, nil
}
func (s *stubRentalSvc) CheckIn(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error) {
	return &model.Rental{ID: rentalID}, nil
}
func (s *stubRentalSvc) Delete(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error) {
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return &model.Rental{ID: rentalID}, nil
}
func (s *stubRentalSvc) Get(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error) {
	return &model.Rental{ID: rentalID}, nil
}
func (s *stubRentalSvc) List(ctx context.Context) ([]model.Rental, error) { return nil, nil }

func newTestServer(t *testing.T, svc rentalsvc.Service) *echo.Echo {
	t.Helper()
	e := echo.New()
	log := slog.Default()
	v := validator.New()
	Register(e, C{
		Rental:    &rentalctrl.Controller{Svc: svc, V: v, Log: log},
		JWTSecret: testSecret,
	})
	return e
}

func token(t *testing.T, isAdmin bool) string {
	t.Helper()
	tok, err := jwtutil.Issue(testSecret, uuid.New(), isAdmin, 1)
	require.NoError(t, err)
	return tok
}

func TestCheckout_NoCredential(t *testing.T) {
	e := newTestServer(t, &stubRentalSvc{})

	body := `{"customer_id":"` + uuid.NewString() + `","movie_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/rentals", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckout_Authenticated(t *testing.T) {
	e := newTestServer(t, &stubRentalSvc{})

	body := `{"customer_id":"` + uuid.NewString() + `","movie_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/rentals", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token(t, false))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckout_MissingBodyFields(t *testing.T) {
	e := newTestServer(t, &stubRentalSvc{})

	req := httptest.NewRequest(http.MethodPost, "/v1/rentals", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token(t, false))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteRental_NonAdminForbidden(t *testing.T) {
	e := newTestServer(t, &stubRentalSvc{})

	req := httptest.NewRequest(http.MethodDelete, "/v1/rentals/"+uuid.NewString(), nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token(t, false))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteRental_Admin(t *testing.T) {
	e := newTestServer(t, &stubRentalSvc{})

	req := httptest.NewRequest(http.MethodDelete, "/v1/rentals/"+uuid.NewString(), nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token(t, true))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRental_BadIDFormat(t *testing.T) {
	e := newTestServer(t, &stubRentalSvc{})

	req := httptest.NewRequest(http.MethodGet, "/v1/rentals/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
