package model

import "github.com/google/uuid"

// PaymentStatus is the lifecycle state of a payment record. The same values
// are used as the reservation status, which follows its payment.
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "PAID"
	PaymentCanceled PaymentStatus = "CANCELED"
)

// Payment is the client-facing slice of a payment record.
type Payment struct {
	Status PaymentStatus `json:"status"`
	Price  int           `json:"price"`
}

// PaymentRecord is the payment service's full record, including the
// backend-assigned identifier used to reference and delete it later.
type PaymentRecord struct {
	PaymentUID uuid.UUID     `json:"paymentUid"`
	Status     PaymentStatus `json:"status"`
	Price      int           `json:"price"`
}
