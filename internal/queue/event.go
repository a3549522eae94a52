// Package queue defines the domain events published to the message broker,
// the best-effort publisher, and the optional audit consumer.
package queue

// Queue names on the broker; one durable queue per event type.
const (
	CreatedQueueName  = "reservation.created"
	CanceledQueueName = "reservation.canceled"
)

// ReservationCreatedEvent is published after a booking run commits. It
// carries enough for downstream consumers to log, notify or feed analytics
// without calling back into the platform.
type ReservationCreatedEvent struct {
	ReservationUID string `json:"reservation_uid"`
	HotelUID       string `json:"hotel_uid"`
	User           string `json:"user"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Price          int    `json:"price"`
	Discount       int    `json:"discount"`
	CreatedAt      string `json:"created_at"`
}

// ReservationCanceledEvent is published after a cancellation completes.
type ReservationCanceledEvent struct {
	ReservationUID string `json:"reservation_uid"`
	User           string `json:"user"`
	CanceledAt     string `json:"canceled_at"`
}
