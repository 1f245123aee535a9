package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-room-reservation/internal/config"
	"github.com/iliyamo/hotel-room-reservation/internal/database"
	"github.com/iliyamo/hotel-room-reservation/internal/handler"
	"github.com/iliyamo/hotel-room-reservation/internal/queue"
	"github.com/iliyamo/hotel-room-reservation/internal/repository"
	"github.com/iliyamo/hotel-room-reservation/internal/router"
	"github.com/iliyamo/hotel-room-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}
	if cfg.Env == "prod" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable, cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	enrollments := repository.NewEnrollmentRepo(db)
	tickets := repository.NewTicketRepo(db)
	hotels := repository.NewHotelRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)

	bookingSvc := service.NewBookingService(enrollments, tickets, bookings)
	hotelSvc := service.NewHotelService(enrollments, tickets, hotels, rooms)

	publisher := queue.NewAMQPPublisher(cfg.AMQPURL)

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, users, tokens),
		Enrollment: handler.NewEnrollmentHandler(enrollments),
		Ticket:     handler.NewTicketHandler(enrollments, tickets),
		Hotel:      handler.NewHotelHandler(hotelSvc),
		Booking:    handler.NewBookingHandler(bookingSvc, publisher),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	router.Register(e, h, cfg, rdb)

	// Housekeeping: drop refresh tokens that expired over a month ago.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if n, err := tokens.PurgeExpired(ctx, 30*24*time.Hour); err != nil {
		logrus.WithError(err).Warn("refresh token purge failed")
	} else if n > 0 {
		logrus.WithField("rows", n).Info("purged expired refresh tokens")
	}
	cancel()

	go queue.StartBookingConsumer(cfg.AMQPURL)

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}
