package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-booking-gateway/internal/aggregate"
	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/middleware"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
	"github.com/iliyamo/hotel-booking-gateway/internal/queue"
	"github.com/iliyamo/hotel-booking-gateway/internal/saga"
)

// ReservationHandler serves reservation reads and drives the booking and
// cancellation workflows. Events is optional; when nil no domain events are
// published.
type ReservationHandler struct {
	Reservations *client.Reservation
	Payments     *client.Payment
	Booking      *saga.Coordinator
	Cancellation *saga.Compensator
	Events       *queue.Publisher
	Log          *zap.Logger
}

// List handles GET /api/v1/reservations. Reservations are enriched with
// payment details concurrently and returned in the order the reservation
// service listed them.
func (h *ReservationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.Reservations.List(ctx, middleware.Username(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, aggregate.Reservations(ctx, h.Payments, items, h.Log))
}

// Get handles GET /api/v1/reservations/:id with best-effort payment
// enrichment: a failed payment lookup omits the field, it does not fail the
// request.
func (h *ReservationHandler) Get(c echo.Context) error {
	uid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "invalid reservation id"})
	}

	ctx := c.Request().Context()
	item, err := h.Reservations.Get(ctx, middleware.Username(c), uid)
	if err != nil {
		return respondError(c, err)
	}

	var payment *model.Payment
	if p, perr := h.Payments.Get(ctx, item.PaymentUID); perr != nil {
		h.Log.Warn("payment enrichment failed",
			zap.String("reservationUid", uid.String()),
			zap.Error(perr))
	} else {
		payment = &p
	}
	return c.JSON(http.StatusOK, item.View(payment))
}

// Create handles POST /api/v1/reservations: the orchestrated booking
// workflow. On success a reservation.created event is published best effort.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "invalid request body"})
	}

	user := middleware.Username(c)
	resp, err := h.Booking.Book(c.Request().Context(), user, req)
	if err != nil {
		return respondError(c, err)
	}

	if h.Events != nil {
		_ = h.Events.ReservationCreated(c.Request().Context(), queue.ReservationCreatedEvent{
			ReservationUID: resp.ReservationUID.String(),
			HotelUID:       resp.HotelUID.String(),
			User:           user,
			StartDate:      resp.StartDate.Format(model.DateLayout),
			EndDate:        resp.EndDate.Format(model.DateLayout),
			Price:          resp.Payment.Price,
			Discount:       resp.Discount,
			CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/reservations/:id: the cancellation workflow.
// A loyalty failure on the final step does not fail the request; the retry
// worker finishes the job in the background.
func (h *ReservationHandler) Delete(c echo.Context) error {
	uid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "invalid reservation id"})
	}

	user := middleware.Username(c)
	if err := h.Cancellation.Cancel(c.Request().Context(), user, uid); err != nil {
		return respondError(c, err)
	}

	if h.Events != nil {
		_ = h.Events.ReservationCanceled(c.Request().Context(), queue.ReservationCanceledEvent{
			ReservationUID: uid.String(),
			User:           user,
			CanceledAt:     time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.NoContent(http.StatusNoContent)
}
