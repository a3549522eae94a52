// Package config loads gateway configuration from environment variables. A
// local .env file is loaded first when present so development setups match
// the container environment. Every value has a default; the gateway starts
// without any variable set.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	ReservationURL string        // base URL of the reservation service
	PaymentURL     string        // base URL of the payment service
	LoyaltyURL     string        // base URL of the loyalty service
	HTTPTimeout    time.Duration // per-request timeout for downstream calls
	QueueSize      int           // retry queue capacity
	RetryDelay     time.Duration // fixed delay between retry attempts
	RetryTTL       time.Duration // how long a deferred action stays retryable
	AMQPURL        string        // RabbitMQ URL for domain events (optional)
	EventsEnabled  bool          // publish domain events when true
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Env:            envStr("APP_ENV", "dev"),
		Port:           envStr("APP_PORT", "8080"),
		ReservationURL: envStr("RESERVATION_URL", "http://reservation:8070"),
		PaymentURL:     envStr("PAYMENT_URL", "http://payment:8060"),
		LoyaltyURL:     envStr("LOYALTY_URL", "http://loyalty:8050"),
		HTTPTimeout:    envDur("HTTP_CLIENT_TIMEOUT", 5*time.Second),
		QueueSize:      envInt("RETRY_QUEUE_SIZE", 10),
		RetryDelay:     envDur("RETRY_DELAY", 500*time.Millisecond),
		RetryTTL:       envDur("RETRY_TTL", 10*time.Second),
		AMQPURL:        envStr("RABBITMQ_URL", ""),
		EventsEnabled:  envBool("EVENTS_ENABLED", false),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true"
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
