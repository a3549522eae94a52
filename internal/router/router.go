// Package router defines how the gateway's HTTP routes are registered.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/handler"
	"github.com/iliyamo/hotel-booking-gateway/internal/middleware"
)

// Deps carries the constructed handlers and the optional middleware applied
// to the hotel-listing pass-through. Cache and RateLimit may be nil.
type Deps struct {
	Hotels       *handler.HotelHandler
	Loyalty      *handler.LoyaltyHandler
	Users        *handler.UserHandler
	Reservations *handler.ReservationHandler
	Cache        echo.MiddlewareFunc
	RateLimit    echo.MiddlewareFunc
}

// RegisterRoutes wires the public gateway surface onto the Echo instance.
// The hotel listing is the only cached and rate-limited route; every
// identity-scoped route runs the identity guard before any downstream call.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.GET("/manage/health", handler.Health)

	api := e.Group("/api/v1")

	var listMW []echo.MiddlewareFunc
	if d.RateLimit != nil {
		listMW = append(listMW, d.RateLimit)
	}
	if d.Cache != nil {
		listMW = append(listMW, d.Cache)
	}
	api.GET("/hotels", d.Hotels.List, listMW...)

	user := api.Group("", middleware.RequireIdentity())
	user.GET("/me", d.Users.Me)
	user.GET("/loyalty", d.Loyalty.Get)
	user.GET("/reservations", d.Reservations.List)
	user.POST("/reservations", d.Reservations.Create)
	user.GET("/reservations/:id", d.Reservations.Get)
	user.DELETE("/reservations/:id", d.Reservations.Delete)
}
