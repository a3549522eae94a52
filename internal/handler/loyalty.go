package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/middleware"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// LoyaltyHandler serves the loyalty pass-through.
type LoyaltyHandler struct {
	Loyalty *client.Loyalty
}

// Get handles GET /api/v1/loyalty. The loyalty service's answer, including
// "no account yet" as 404, is forwarded to the caller.
func (h *LoyaltyHandler) Get(c echo.Context) error {
	out, err := h.Loyalty.Get(c.Request().Context(), middleware.Username(c))
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{Message: "Loyalty Service unavailable"})
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
