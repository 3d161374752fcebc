package echoServer

import (
	"net/http"

	authctrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/auth"
	customerctrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/customer"
	genrectrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/genre"
	moviectrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/movie"
	rentalctrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/rental"
	userctrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth     *authctrl.Controller
	Genre    *genrectrl.Controller
	Customer *customerctrl.Controller
	Movie    *moviectrl.Controller
	Rental   *rentalctrl.Controller
	User     *userctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	pub.GET("/genres", c.Genre.List)
	pub.GET("/genres/count", c.Genre.Count)
	pub.GET("/genres/:id", c.Genre.Detail)

	pub.GET("/customers", c.Customer.List)
	pub.GET("/customers/:id", c.Customer.Detail)

	pub.GET("/movies", c.Movie.List)
	pub.GET("/movies/count", c.Movie.Count)
	pub.GET("/movies/:id", c.Movie.Detail)

	pub.GET("/rentals", c.Rental.List)
	pub.GET("/rentals/:id", c.Rental.Detail)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(c.JWTSecret),
		TokenLookup: "header:Authorization",
	}))
	auth.Use(extractClaims)

	auth.POST("/genres", c.Genre.Create)
	auth.PUT("/genres/:id", c.Genre.Update)
	auth.DELETE("/genres/:id", c.Genre.Delete) // admin

	auth.POST("/customers", c.Customer.Create)
	auth.PUT("/customers/:id", c.Customer.Update)
	auth.DELETE("/customers/:id", c.Customer.Delete) // admin

	auth.POST("/movies", c.Movie.Create)
	auth.PUT("/movies/:id", c.Movie.Update)
	auth.DELETE("/movies/:id", c.Movie.Delete) // admin

	auth.POST("/rentals", c.Rental.Create)
	auth.POST("/rentals/:id/return", c.Rental.Return)
	auth.DELETE("/rentals/:id", c.Rental.Delete) // admin

	auth.GET("/users", c.User.List)
	auth.GET("/users/me", c.User.Me)
	auth.GET("/users/:id", c.User.Detail)
	auth.PUT("/users/:id", c.User.Update)
	auth.DELETE("/users/:id", c.User.Delete) // admin
}

// extractClaims pulls user_id and is_admin out of the verified token so
// handlers never touch the raw JWT.
func extractClaims(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		tok, ok := ctx.Get("user").(*jwt.Token)
		if !ok || tok == nil {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		uid, err := uuid.Parse(sub)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}

		isAdmin, _ := claims["is_admin"].(bool)

		ctx.Set("user_id", uid)
		ctx.Set("is_admin", isAdmin)
		return next(ctx)
	}
}
