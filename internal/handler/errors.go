// Package handler contains the HTTP handlers of the gateway. Handlers bind
// and validate input, delegate to the downstream clients or the orchestrated
// workflows, and translate the error taxonomy into HTTP responses. Error
// bodies carry only a human-readable message; diagnostic detail stays in the
// logs.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
	"github.com/iliyamo/hotel-booking-gateway/internal/saga"
)

// respondError maps the client/saga error taxonomy onto the response the
// caller sees: 503 for transport failures, the preserved status for upstream
// rejections, and 500 for contract mismatches and anything unknown.
func respondError(c echo.Context, err error) error {
	var upstream *client.UpstreamError
	switch {
	case errors.Is(err, saga.ErrLoyaltyUnavailable):
		return c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{Message: "Loyalty Service unavailable"})
	case errors.Is(err, client.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{Message: "service unavailable"})
	case errors.As(err, &upstream):
		return c.JSON(upstream.StatusCode, model.ErrorResponse{Message: http.StatusText(upstream.StatusCode)})
	default:
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: http.StatusText(http.StatusInternalServerError)})
	}
}
