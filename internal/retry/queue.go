// Package retry implements the in-memory deferred-retry engine: a bounded
// FIFO queue drained by a single background worker that retries each action
// until it succeeds or its deadline passes. The queue is not persisted; a
// process restart drops whatever is pending.
package retry

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Kind identifies the operation a deferred action performs. Actions are plain
// data records rather than closures so queue contents stay inspectable; the
// worker's Executor interprets them.
type Kind string

// KindLoyaltyDelete retries a loyalty-record deletion that failed during a
// cancellation.
const KindLoyaltyDelete Kind = "loyalty.delete"

// Action is one unit of deferred work. Once Deadline has passed the action is
// abandoned without further escalation.
type Action struct {
	Kind     Kind
	User     string
	Deadline time.Time
}

// Executor performs a single attempt of an action.
type Executor interface {
	Execute(ctx context.Context, a Action) error
}

// Queue is a bounded FIFO work queue consumed by exactly one worker. Enqueue
// order is processing order; a repeatedly failing action delays everything
// behind it, which is an accepted trade-off at the expected volume of
// compensations.
type Queue struct {
	ch    chan Action
	exec  Executor
	delay time.Duration
	log   *zap.Logger
}

// New builds a queue with the given capacity and fixed inter-attempt delay.
func New(capacity int, delay time.Duration, exec Executor, log *zap.Logger) *Queue {
	return &Queue{ch: make(chan Action, capacity), exec: exec, delay: delay, log: log}
}

// Enqueue submits an action. It blocks while the queue is full and fails only
// when ctx is done first; that is the backpressure signal to the producer.
func (q *Queue) Enqueue(ctx context.Context, a Action) error {
	select {
	case q.ch <- a:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len reports how many actions are waiting.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Run drains the queue until ctx is done. It is the single process-wide
// worker; start it once as a goroutine at startup.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case a := <-q.ch:
			q.process(ctx, a)
		}
	}
}

// process retries one action until it succeeds, its deadline passes, or ctx
// is done. The first attempt runs immediately; later attempts are spaced by
// the fixed delay with the deadline checked before each of them.
func (q *Queue) process(ctx context.Context, a Action) {
	for {
		err := q.exec.Execute(ctx, a)
		if err == nil {
			q.log.Debug("deferred action completed",
				zap.String("kind", string(a.Kind)),
				zap.String("user", a.User))
			return
		}
		q.log.Debug("deferred action attempt failed",
			zap.String("kind", string(a.Kind)),
			zap.String("user", a.User),
			zap.Error(err))

		timer := time.NewTimer(q.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if time.Now().After(a.Deadline) {
			q.log.Warn("deferred action abandoned past deadline",
				zap.String("kind", string(a.Kind)),
				zap.String("user", a.User))
			return
		}
	}
}
