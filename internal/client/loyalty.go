package client

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// Loyalty talks to the loyalty service. Accounts are keyed by user identity;
// a 404 from the service means "no account yet" and is surfaced as an
// UpstreamError so callers can special-case it via IsNotFound.
type Loyalty struct {
	c *Caller
}

// NewLoyalty builds a loyalty-service client rooted at base.
func NewLoyalty(base string, httpc *http.Client, log *zap.Logger) *Loyalty {
	return &Loyalty{c: NewCaller("loyalty", base, httpc, log)}
}

// Get fetches the user's loyalty account.
func (l *Loyalty) Get(ctx context.Context, user string) (model.Loyalty, error) {
	var out model.Loyalty
	err := l.c.do(ctx, http.MethodGet, "/api/v1/loyalty", user, nil, nil, &out)
	return out, err
}

// Increment notifies the loyalty service that the user completed a
// reservation; the service bumps the counter and recalculates the tier.
func (l *Loyalty) Increment(ctx context.Context, user string) error {
	return l.c.do(ctx, http.MethodPut, "/api/v1/loyalty", user, nil, nil, nil)
}

// Delete decrements/removes the user's loyalty record after a cancellation.
func (l *Loyalty) Delete(ctx context.Context, user string) error {
	return l.c.do(ctx, http.MethodDelete, "/api/v1/loyalty", user, nil, nil, nil)
}
