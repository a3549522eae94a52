package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityHeader carries the pre-validated, opaque user identity on inbound
// requests and is forwarded unchanged to the downstream services.
const IdentityHeader = "X-User-Name"

// ServiceReservation is a reservation as returned by the reservation service.
// Dates arrive as full timestamps and are narrowed to calendar days before
// reaching clients.
type ServiceReservation struct {
	ReservationUID uuid.UUID     `json:"reservationUid"`
	Hotel          HotelSummary  `json:"hotel"`
	StartDate      time.Time     `json:"startDate"`
	EndDate        time.Time     `json:"endDate"`
	Status         PaymentStatus `json:"status"`
	PaymentUID     uuid.UUID     `json:"paymentUid"`
}

// Reservation is the client-facing reservation view. Payment is optional:
// when the enrichment lookup fails the field is omitted and the rest of the
// reservation is still returned.
type Reservation struct {
	ReservationUID uuid.UUID     `json:"reservationUid"`
	Hotel          HotelSummary  `json:"hotel"`
	StartDate      Date          `json:"startDate"`
	EndDate        Date          `json:"endDate"`
	Status         PaymentStatus `json:"status"`
	Payment        *Payment      `json:"payment,omitempty"`
}

// View converts the backend representation into the client-facing one,
// attaching the payment when the enrichment lookup succeeded.
func (r ServiceReservation) View(p *Payment) Reservation {
	return Reservation{
		ReservationUID: r.ReservationUID,
		Hotel:          r.Hotel,
		StartDate:      DateOf(r.StartDate),
		EndDate:        DateOf(r.EndDate),
		Status:         r.Status,
		Payment:        p,
	}
}

// CreateReservationRequest is the client input to the booking workflow.
type CreateReservationRequest struct {
	HotelUID  uuid.UUID `json:"hotelUid"`
	StartDate Date      `json:"startDate"`
	EndDate   Date      `json:"endDate"`
}

// CreateReservationResponse is the combined view returned after a successful
// booking run.
type CreateReservationResponse struct {
	ReservationUID uuid.UUID     `json:"reservationUid"`
	HotelUID       uuid.UUID     `json:"hotelUid"`
	StartDate      Date          `json:"startDate"`
	EndDate        Date          `json:"endDate"`
	Discount       int           `json:"discount"`
	Status         PaymentStatus `json:"status"`
	Payment        Payment       `json:"payment"`
}

// ServiceReservationRequest is the write issued to the reservation service,
// referencing the already-created payment record.
type ServiceReservationRequest struct {
	HotelUID   uuid.UUID `json:"hotelUid"`
	PaymentUID uuid.UUID `json:"paymentUid"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
}

// ServiceReservationCreated is the reservation service's response to a
// successful create.
type ServiceReservationCreated struct {
	ReservationUID uuid.UUID     `json:"reservationUid"`
	HotelUID       uuid.UUID     `json:"hotelUid"`
	PaymentUID     uuid.UUID     `json:"paymentUid"`
	StartDate      time.Time     `json:"startDate"`
	EndDate        time.Time     `json:"endDate"`
	Status         PaymentStatus `json:"status"`
}

// UserInfo aggregates everything the gateway exposes about a user: their
// reservations (payment-enriched, best effort) and their loyalty account when
// one exists.
type UserInfo struct {
	Reservations []Reservation `json:"reservations"`
	Loyalty      *Loyalty      `json:"loyalty,omitempty"`
}

// ErrorResponse is the uniform error body returned to clients. It carries
// only a human-readable message; internal detail stays in the logs.
type ErrorResponse struct {
	Message string `json:"message"`
}
