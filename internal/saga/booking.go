// Package saga implements the gateway's two orchestrated workflows: booking
// (reservation creation) with a compensating payment delete, and cancellation
// with a deferred loyalty cleanup. The three backend services know nothing of
// each other, so there is no transaction manager; failures mid-sequence are
// compensated explicitly.
package saga

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// ReservationService is the slice of the reservation client the workflows use.
type ReservationService interface {
	Hotel(ctx context.Context, uid uuid.UUID) (model.Hotel, error)
	Get(ctx context.Context, user string, uid uuid.UUID) (model.ServiceReservation, error)
	Create(ctx context.Context, user string, req model.ServiceReservationRequest) (model.ServiceReservationCreated, error)
	Delete(ctx context.Context, user string, uid uuid.UUID) error
}

// PaymentService is the slice of the payment client the workflows use.
type PaymentService interface {
	Create(ctx context.Context, price int) (model.PaymentRecord, error)
	Delete(ctx context.Context, user string, uid uuid.UUID) error
}

// LoyaltyService is the slice of the loyalty client the workflows use.
type LoyaltyService interface {
	Get(ctx context.Context, user string) (model.Loyalty, error)
	Increment(ctx context.Context, user string) error
	Delete(ctx context.Context, user string) error
}

// ErrLoyaltyUnavailable marks a booking aborted because the loyalty service
// could not be used; by the time it is returned any payment record created in
// the same run has been rolled back (or the rollback failure logged).
// Handlers translate it into 503 with a fixed message.
var ErrLoyaltyUnavailable = errors.New("loyalty service unavailable")

// Coordinator runs the reservation-creation workflow.
type Coordinator struct {
	Reservations ReservationService
	Payments     PaymentService
	Loyalty      LoyaltyService
	Log          *zap.Logger
}

// Book executes the booking workflow for user: price the stay from a fresh
// hotel quote, apply the loyalty discount, create the payment record, bump
// the loyalty counter, and only then create the reservation record.
//
// The payment record is always written before the reservation record. A
// loyalty-update failure rolls the payment back before the error is
// returned; a reservation-create failure after that point is not
// compensated.
func (s *Coordinator) Book(ctx context.Context, user string, req model.CreateReservationRequest) (model.CreateReservationResponse, error) {
	var resp model.CreateReservationResponse

	hotel, err := s.Reservations.Hotel(ctx, req.HotelUID)
	if err != nil {
		return resp, err
	}

	cost := model.Nights(req.StartDate, req.EndDate) * hotel.Price

	loyalty, err := s.Loyalty.Get(ctx, user)
	switch {
	case err == nil:
	case client.IsNotFound(err):
		// First-time guest: no account yet, baseline discount applies.
		loyalty = model.DefaultLoyalty()
	case errors.Is(err, client.ErrUnavailable):
		return resp, ErrLoyaltyUnavailable
	default:
		// Anything else from the loyalty read is a contract surprise and is
		// surfaced as an internal error, not as the loyalty status itself.
		return resp, fmt.Errorf("loyalty account lookup: %v", err)
	}

	cost -= cost * loyalty.Discount / 100

	payment, err := s.Payments.Create(ctx, cost)
	if err != nil {
		return resp, err
	}

	// The payment now exists downstream. Run the loyalty update and any
	// rollback to completion even if the caller has gone away, so an
	// orphaned payment always gets a cleanup attempt.
	ctx = context.WithoutCancel(ctx)

	if err := s.Loyalty.Increment(ctx, user); err != nil {
		s.Log.Warn("loyalty update failed, rolling back payment",
			zap.String("user", user),
			zap.Error(err))
		if derr := s.Payments.Delete(ctx, "", payment.PaymentUID); derr != nil {
			s.Log.Error("payment rollback failed",
				zap.String("paymentUid", payment.PaymentUID.String()),
				zap.Error(derr))
		}
		return resp, ErrLoyaltyUnavailable
	}

	created, err := s.Reservations.Create(ctx, user, model.ServiceReservationRequest{
		HotelUID:   req.HotelUID,
		PaymentUID: payment.PaymentUID,
		StartDate:  req.StartDate.Timestamp(),
		EndDate:    req.EndDate.Timestamp(),
	})
	if err != nil {
		return resp, err
	}

	return model.CreateReservationResponse{
		ReservationUID: created.ReservationUID,
		HotelUID:       created.HotelUID,
		StartDate:      model.DateOf(created.StartDate),
		EndDate:        model.DateOf(created.EndDate),
		Discount:       loyalty.Discount,
		Status:         created.Status,
		Payment:        model.Payment{Status: payment.Status, Price: payment.Price},
	}, nil
}
