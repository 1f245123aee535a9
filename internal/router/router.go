// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-room-reservation/internal/config"
	"github.com/iliyamo/hotel-room-reservation/internal/handler"
	"github.com/iliyamo/hotel-room-reservation/internal/middleware"
)

// Handlers bundles every handler the API serves.
type Handlers struct {
	Auth       *handler.AuthHandler
	Enrollment *handler.EnrollmentHandler
	Ticket     *handler.TicketHandler
	Hotel      *handler.HotelHandler
	Booking    *handler.BookingHandler
}

// Register sets up all routes on the Echo instance.  Auth endpoints
// and the health check are public; everything else lives under /v1
// behind JWT auth.  The hotel catalogue GETs additionally run through
// the Redis response cache, and the whole API shares one rate limiter.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	e.GET("/healthz", handler.Health)

	// Session endpoints need no existing session.
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	v1 := e.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	v1.POST("/auth/logout", h.Auth.Logout)
	v1.GET("/me", h.Auth.Me)

	v1.PUT("/enrollments", h.Enrollment.Upsert)
	v1.GET("/enrollments", h.Enrollment.Get)

	v1.GET("/tickets/types", h.Ticket.ListTypes)
	v1.POST("/tickets", h.Ticket.Buy)
	v1.GET("/tickets", h.Ticket.Get)
	v1.POST("/tickets/:ticketId/pay", h.Ticket.Pay)

	// Catalogue reads are cacheable; occupancy counts tolerate the
	// short TTL.
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	v1.GET("/hotels", h.Hotel.List, cache)
	v1.GET("/hotels/:hotelId", h.Hotel.Get, cache)

	v1.POST("/booking", h.Booking.Create)
	v1.PUT("/booking/:bookingId", h.Booking.Update)
	v1.GET("/booking", h.Booking.Get)
}
