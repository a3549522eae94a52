// Package aggregate implements the fan-out/fan-in used to assemble
// payment-enriched reservation views.
package aggregate

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// PaymentReader is the slice of the payment client the aggregator needs.
type PaymentReader interface {
	Get(ctx context.Context, uid uuid.UUID) (model.Payment, error)
}

// Reservations enriches each reservation with its payment record. Lookups for
// sibling reservations run concurrently with no ordering dependency between
// them; results are joined back in input order so responses stay stable. A
// failed lookup only omits that entry's payment field, it never fails the
// whole response.
func Reservations(ctx context.Context, payments PaymentReader, items []model.ServiceReservation, log *zap.Logger) []model.Reservation {
	views := make([]model.Reservation, len(items))
	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := items[i]
			var payment *model.Payment
			if p, err := payments.Get(ctx, item.PaymentUID); err != nil {
				log.Warn("payment enrichment failed",
					zap.String("reservationUid", item.ReservationUID.String()),
					zap.Error(err))
			} else {
				payment = &p
			}
			views[i] = item.View(payment)
		}(i)
	}
	wg.Wait()
	return views
}
