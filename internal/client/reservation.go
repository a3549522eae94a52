package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// Reservation talks to the reservation service, which owns hotels and
// reservation records and scopes reservation operations by the forwarded
// user identity.
type Reservation struct {
	c *Caller
}

// NewReservation builds a reservation-service client rooted at base.
func NewReservation(base string, httpc *http.Client, log *zap.Logger) *Reservation {
	return &Reservation{c: NewCaller("reservation", base, httpc, log)}
}

// Hotels proxies the paginated hotel listing, forwarding the caller's query
// parameters untouched so the reservation service applies its own defaults
// and validation.
func (r *Reservation) Hotels(ctx context.Context, query url.Values) (model.Pagination, error) {
	var out model.Pagination
	err := r.c.do(ctx, http.MethodGet, "/api/v1/hotels", "", query, nil, &out)
	return out, err
}

// Hotel fetches one hotel by identifier.
func (r *Reservation) Hotel(ctx context.Context, uid uuid.UUID) (model.Hotel, error) {
	var out model.Hotel
	err := r.c.do(ctx, http.MethodGet, "/api/v1/hotel/"+uid.String(), "", nil, nil, &out)
	return out, err
}

// List returns every reservation belonging to user.
func (r *Reservation) List(ctx context.Context, user string) ([]model.ServiceReservation, error) {
	var out []model.ServiceReservation
	err := r.c.do(ctx, http.MethodGet, "/api/v1/reservations", user, nil, nil, &out)
	return out, err
}

// Get fetches one of user's reservations by identifier.
func (r *Reservation) Get(ctx context.Context, user string, uid uuid.UUID) (model.ServiceReservation, error) {
	var out model.ServiceReservation
	err := r.c.do(ctx, http.MethodGet, "/api/v1/reservations/"+uid.String(), user, nil, nil, &out)
	return out, err
}

// Create writes a reservation record referencing an existing payment record.
func (r *Reservation) Create(ctx context.Context, user string, req model.ServiceReservationRequest) (model.ServiceReservationCreated, error) {
	var out model.ServiceReservationCreated
	err := r.c.do(ctx, http.MethodPost, "/api/v1/reservations", user, nil, req, &out)
	return out, err
}

// Delete removes a reservation record.
func (r *Reservation) Delete(ctx context.Context, user string, uid uuid.UUID) error {
	return r.c.do(ctx, http.MethodDelete, "/api/v1/reservations/"+uid.String(), user, nil, nil, nil)
}
