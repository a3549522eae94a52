package saga

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-booking-gateway/internal/retry"
)

// Deferrer accepts deferred work for the background retry worker.
type Deferrer interface {
	Enqueue(ctx context.Context, a retry.Action) error
}

// Compensator runs the cancellation workflow.
type Compensator struct {
	Reservations ReservationService
	Payments     PaymentService
	Loyalty      LoyaltyService
	Queue        Deferrer
	RetryTTL     time.Duration
	Log          *zap.Logger
}

// Cancel fetches the reservation to learn its payment reference, deletes the
// reservation record, deletes the payment record, and finally deletes the
// user's loyalty record. The first three steps abort on failure. A loyalty
// failure on the last step is absorbed: the reservation and payment are
// already gone, which is the user-visible guarantee, so the caller still
// sees success and the deletion is handed to the retry queue with a fixed
// future deadline.
func (s *Compensator) Cancel(ctx context.Context, user string, uid uuid.UUID) error {
	reservation, err := s.Reservations.Get(ctx, user, uid)
	if err != nil {
		return err
	}

	if err := s.Reservations.Delete(ctx, user, uid); err != nil {
		return err
	}

	if err := s.Payments.Delete(ctx, user, reservation.PaymentUID); err != nil {
		return err
	}

	if err := s.Loyalty.Delete(ctx, user); err != nil {
		s.Log.Warn("loyalty delete failed, deferring retry",
			zap.String("user", user),
			zap.Error(err))
		action := retry.Action{
			Kind:     retry.KindLoyaltyDelete,
			User:     user,
			Deadline: time.Now().Add(s.RetryTTL),
		}
		if qerr := s.Queue.Enqueue(ctx, action); qerr != nil {
			s.Log.Error("failed to defer loyalty delete",
				zap.String("user", user),
				zap.Error(qerr))
		}
	}
	return nil
}

// LoyaltyExecutor interprets deferred actions for the retry worker. Unknown
// kinds are dropped with a log line rather than retried until their deadline.
type LoyaltyExecutor struct {
	Loyalty LoyaltyService
	Log     *zap.Logger
}

// Execute performs one attempt of a deferred action.
func (e *LoyaltyExecutor) Execute(ctx context.Context, a retry.Action) error {
	switch a.Kind {
	case retry.KindLoyaltyDelete:
		return e.Loyalty.Delete(ctx, a.User)
	default:
		e.Log.Warn("unknown deferred action kind", zap.String("kind", string(a.Kind)))
		return nil
	}
}
