package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-booking-gateway/internal/aggregate"
	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/middleware"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// UserHandler assembles the aggregated user profile.
type UserHandler struct {
	Reservations *client.Reservation
	Payments     *client.Payment
	Loyalty      *client.Loyalty
	Log          *zap.Logger
}

// Me handles GET /api/v1/me: the user's reservations with best-effort payment
// enrichment, plus their loyalty account. The loyalty lookup is best effort
// with one exception: a client-error status from the loyalty service (a 404
// included) is treated as caller misuse and propagated, while transport and
// decode failures merely omit the field.
func (h *UserHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.Username(c)

	var loyalty *model.Loyalty
	if l, err := h.Loyalty.Get(ctx, user); err == nil {
		loyalty = &l
	} else {
		var upstream *client.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode >= 400 && upstream.StatusCode < 500 {
			return respondError(c, err)
		}
		h.Log.Warn("loyalty lookup failed, omitting from profile",
			zap.String("user", user),
			zap.Error(err))
	}

	items, err := h.Reservations.List(ctx, user)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, model.UserInfo{
		Reservations: aggregate.Reservations(ctx, h.Payments, items, h.Log),
		Loyalty:      loyalty,
	})
}
