package saga

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
	"github.com/iliyamo/hotel-booking-gateway/internal/retry"
)

type fakeDeferrer struct {
	actions []retry.Action
	err     error
}

func (f *fakeDeferrer) Enqueue(ctx context.Context, a retry.Action) error {
	if f.err != nil {
		return f.err
	}
	f.actions = append(f.actions, a)
	return nil
}

func newCancelFixture(t *testing.T) (*Compensator, *fakeReservations, *fakePayments, *fakeLoyalty, *fakeDeferrer, *callLog) {
	t.Helper()
	log := &callLog{}
	reservations := &fakeReservations{
		log: log,
		reservation: model.ServiceReservation{
			ReservationUID: uuid.New(),
			PaymentUID:     uuid.New(),
			Status:         model.PaymentPaid,
		},
	}
	payments := &fakePayments{log: log}
	loyalty := &fakeLoyalty{log: log}
	queue := &fakeDeferrer{}
	compensator := &Compensator{
		Reservations: reservations,
		Payments:     payments,
		Loyalty:      loyalty,
		Queue:        queue,
		RetryTTL:     10 * time.Second,
		Log:          zaptest.NewLogger(t),
	}
	return compensator, reservations, payments, loyalty, queue, log
}

func TestCancelHappyPath(t *testing.T) {
	compensator, reservations, payments, _, queue, log := newCancelFixture(t)

	err := compensator.Cancel(context.Background(), "alice", reservations.reservation.ReservationUID)
	require.NoError(t, err)

	assert.Equal(t, []string{"reservation.get", "reservation.delete", "payment.delete", "loyalty.delete"}, log.calls)
	assert.Equal(t, reservations.reservation.PaymentUID, payments.lastDeleted)
	assert.Empty(t, queue.actions)
}

func TestCancelDefersLoyaltyDeleteFailure(t *testing.T) {
	compensator, reservations, _, loyalty, queue, _ := newCancelFixture(t)
	loyalty.delErr = fmt.Errorf("delete loyalty: %w", client.ErrUnavailable)

	before := time.Now()
	err := compensator.Cancel(context.Background(), "alice", reservations.reservation.ReservationUID)

	// The reservation and payment are gone, so the caller still sees success.
	require.NoError(t, err)

	require.Len(t, queue.actions, 1)
	action := queue.actions[0]
	assert.Equal(t, retry.KindLoyaltyDelete, action.Kind)
	assert.Equal(t, "alice", action.User)
	assert.WithinDuration(t, before.Add(compensator.RetryTTL), action.Deadline, time.Second)
}

func TestCancelEnqueueFailureIsAbsorbed(t *testing.T) {
	compensator, reservations, _, loyalty, queue, _ := newCancelFixture(t)
	loyalty.delErr = errors.New("loyalty down")
	queue.err = errors.New("queue full")

	err := compensator.Cancel(context.Background(), "alice", reservations.reservation.ReservationUID)
	assert.NoError(t, err)
}

func TestCancelReservationDeleteFailureAborts(t *testing.T) {
	compensator, reservations, _, _, queue, log := newCancelFixture(t)
	reservations.deleteErr = fmt.Errorf("delete reservation: %w", client.ErrUnavailable)

	err := compensator.Cancel(context.Background(), "alice", reservations.reservation.ReservationUID)
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, -1, log.index("payment.delete"))
	assert.Equal(t, -1, log.index("loyalty.delete"))
	assert.Empty(t, queue.actions)
}

func TestCancelPaymentDeleteFailureAborts(t *testing.T) {
	compensator, reservations, payments, _, queue, log := newCancelFixture(t)
	payments.deleteErr = fmt.Errorf("delete payment: %w", client.ErrUnavailable)

	err := compensator.Cancel(context.Background(), "alice", reservations.reservation.ReservationUID)
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, -1, log.index("loyalty.delete"))
	assert.Empty(t, queue.actions)
}

func TestCancelUnknownReservationPropagates(t *testing.T) {
	compensator, reservations, _, _, _, log := newCancelFixture(t)
	reservations.getErr = &client.UpstreamError{Service: "reservation", StatusCode: 404}

	err := compensator.Cancel(context.Background(), "alice", uuid.New())
	var upstream *client.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, -1, log.index("reservation.delete"))
}

func TestLoyaltyExecutorDispatch(t *testing.T) {
	log := &callLog{}
	loyalty := &fakeLoyalty{log: log}
	executor := &LoyaltyExecutor{Loyalty: loyalty, Log: zaptest.NewLogger(t)}

	err := executor.Execute(context.Background(), retry.Action{Kind: retry.KindLoyaltyDelete, User: "alice"})
	require.NoError(t, err)
	assert.Equal(t, []string{"loyalty.delete"}, log.calls)

	// Unknown kinds are dropped, not retried.
	err = executor.Execute(context.Background(), retry.Action{Kind: "mystery", User: "alice"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"loyalty.delete"}, log.calls)
}
