package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
)

// HotelHandler serves the hotel-listing pass-through.
type HotelHandler struct {
	Reservations *client.Reservation
}

// List handles GET /api/v1/hotels?page&size. The query string is forwarded
// to the reservation service verbatim and its answer returned unchanged;
// malformed pagination values are the backend's to reject.
func (h *HotelHandler) List(c echo.Context) error {
	out, err := h.Reservations.Hotels(c.Request().Context(), c.QueryParams())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
