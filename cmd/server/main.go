package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/config"
	"github.com/iliyamo/hotel-booking-gateway/internal/handler"
	"github.com/iliyamo/hotel-booking-gateway/internal/middleware"
	"github.com/iliyamo/hotel-booking-gateway/internal/queue"
	"github.com/iliyamo/hotel-booking-gateway/internal/retry"
	"github.com/iliyamo/hotel-booking-gateway/internal/router"
	"github.com/iliyamo/hotel-booking-gateway/internal/saga"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One pooled HTTP client shared by all downstream callers for the life
	// of the process.
	httpc := &http.Client{Timeout: cfg.HTTPTimeout}
	reservations := client.NewReservation(cfg.ReservationURL, httpc, logger)
	payments := client.NewPayment(cfg.PaymentURL, httpc, logger)
	loyalty := client.NewLoyalty(cfg.LoyaltyURL, httpc, logger)

	executor := &saga.LoyaltyExecutor{Loyalty: loyalty, Log: logger}
	retryQueue := retry.New(cfg.QueueSize, cfg.RetryDelay, executor, logger)
	go retryQueue.Run(ctx)

	var events *queue.Publisher
	if cfg.EventsEnabled {
		events = queue.NewPublisher(cfg.AMQPURL, logger)
		go queue.StartAuditConsumer(ctx, cfg.AMQPURL, logger)
	}

	booking := &saga.Coordinator{
		Reservations: reservations,
		Payments:     payments,
		Loyalty:      loyalty,
		Log:          logger,
	}
	cancellation := &saga.Compensator{
		Reservations: reservations,
		Payments:     payments,
		Loyalty:      loyalty,
		Queue:        retryQueue,
		RetryTTL:     cfg.RetryTTL,
		Log:          logger,
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unreachable, cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	router.RegisterRoutes(e, router.Deps{
		Hotels:  &handler.HotelHandler{Reservations: reservations},
		Loyalty: &handler.LoyaltyHandler{Loyalty: loyalty},
		Users: &handler.UserHandler{
			Reservations: reservations,
			Payments:     payments,
			Loyalty:      loyalty,
			Log:          logger,
		},
		Reservations: &handler.ReservationHandler{
			Reservations: reservations,
			Payments:     payments,
			Booking:      booking,
			Cancellation: cancellation,
			Events:       events,
			Log:          logger,
		},
		Cache:     middleware.NewResponseCache(config.LoadCacheConfig(), rdb),
		RateLimit: middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb),
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", ":"+cfg.Port), zap.String("env", cfg.Env))
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
