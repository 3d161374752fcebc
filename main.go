// Package main movie rental API.
//
// @title           Movie Rental API
// @version         1.0
// @description     Movie rental back office (genres, customers, movies, users, rentals).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/AshishsMetkar/Movie-Rental/app/echoServer"
	authctrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/auth"
	customerctrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/customer"
	genrectrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/genre"
	moviectrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/movie"
	rentalctrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/rental"
	userctrl "github.com/AshishsMetkar/Movie-Rental/app/echoServer/controller/user"
	"github.com/AshishsMetkar/Movie-Rental/app/echoServer/validation"
	"github.com/AshishsMetkar/Movie-Rental/config"
	customerrepo "github.com/AshishsMetkar/Movie-Rental/repository/customer"
	genrerepo "github.com/AshishsMetkar/Movie-Rental/repository/genre"
	movierepo "github.com/AshishsMetkar/Movie-Rental/repository/movie"
	rentalrepo "github.com/AshishsMetkar/Movie-Rental/repository/rental"
	userrepo "github.com/AshishsMetkar/Movie-Rental/repository/user"
	authsvc "github.com/AshishsMetkar/Movie-Rental/service/auth"
	customersvc "github.com/AshishsMetkar/Movie-Rental/service/customer"
	genresvc "github.com/AshishsMetkar/Movie-Rental/service/genre"
	moviesvc "github.com/AshishsMetkar/Movie-Rental/service/movie"
	rentalsvc "github.com/AshishsMetkar/Movie-Rental/service/rental"
	usersvc "github.com/AshishsMetkar/Movie-Rental/service/user"
	"github.com/AshishsMetkar/Movie-Rental/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// schema
	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	// DB: pgx pool
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	gr := genrerepo.New(db)
	cr := customerrepo.New(db)
	mr := movierepo.New(db)
	rr := rentalrepo.New(db)
	ur := userrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	gs := genresvc.New(gr)
	cs := customersvc.New(cr)
	ms := moviesvc.New(mr, gr)
	rs := rentalsvc.New(db, rr, mr, cr)
	us := usersvc.New(ur)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	genreC := &genrectrl.Controller{Svc: gs, V: v, Log: log}
	customerC := &customerctrl.Controller{Svc: cs, V: v, Log: log}
	movieC := &moviectrl.Controller{Svc: ms, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:     authC,
		Genre:    genreC,
		Customer: customerC,
		Movie:    movieC,
		Rental:   rentalC,
		User:     userC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
