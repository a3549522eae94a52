package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// Payment talks to the payment service. Payment records are addressed by the
// backend-assigned identifier returned on create.
type Payment struct {
	c *Caller
}

// NewPayment builds a payment-service client rooted at base.
func NewPayment(base string, httpc *http.Client, log *zap.Logger) *Payment {
	return &Payment{c: NewCaller("payment", base, httpc, log)}
}

// Get fetches a payment record by identifier.
func (p *Payment) Get(ctx context.Context, uid uuid.UUID) (model.Payment, error) {
	var out model.Payment
	err := p.c.do(ctx, http.MethodGet, "/api/v1/payment/"+uid.String(), "", nil, nil, &out)
	return out, err
}

// Create writes a new payment record with status PAID and the given price.
func (p *Payment) Create(ctx context.Context, price int) (model.PaymentRecord, error) {
	in := model.Payment{Status: model.PaymentPaid, Price: price}
	var out model.PaymentRecord
	err := p.c.do(ctx, http.MethodPost, "/api/v1/payment", "", nil, in, &out)
	return out, err
}

// Delete removes a payment record. user may be empty: the rollback inside the
// booking workflow is not identity-scoped, the cancellation workflow is.
func (p *Payment) Delete(ctx context.Context, user string, uid uuid.UUID) error {
	return p.c.do(ctx, http.MethodDelete, "/api/v1/payment/"+uid.String(), user, nil, nil, nil)
}
