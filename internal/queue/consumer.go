package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// StartAuditConsumer consumes reservation.created events and appends one
// human-readable line per booking to logs/reservations.log. It reconnects
// with backoff and runs until ctx is done; processing errors reject the
// offending message so the consumer keeps going.
func StartAuditConsumer(ctx context.Context, url string, log *zap.Logger) {
	if url == "" {
		url = defaultAMQPURL
	}

	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return
		}
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Warn("audit consumer: dial failed", zap.Duration("backoff", backoff), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeCreated(ctx, conn, log)
		_ = conn.Close()
		if err != nil {
			log.Warn("audit consumer: consume loop ended", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
			}
		}
	}
}

func consumeCreated(ctx context.Context, conn *amqp.Connection, log *zap.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(CreatedQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(CreatedQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := appendAuditLine(d.Body); err != nil {
				log.Warn("audit consumer: handle message failed", zap.Error(err))
				_ = d.Nack(false, false) // reject, no requeue, to avoid tight loops
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func appendAuditLine(body []byte) error {
	var ev ReservationCreatedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "reservations.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Reservation created | reservation_uid=%s | user=%s | hotel_uid=%s | stay=%s..%s | price=%d | discount=%d%%\n",
		ev.CreatedAt, ev.ReservationUID, ev.User, ev.HotelUID, ev.StartDate, ev.EndDate, ev.Price, ev.Discount)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
