// Package request turns an imperative network call into an observable state
// machine. A Controller owns exactly one conceptual operation; every surface
// interested in that operation reads the same State.
package request

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/metrics"
)

// Phase is the discrete state of an in-flight or completed operation.
type Phase int

const (
	PhaseNone Phase = iota
	PhasePending
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "none"
	}
}

// State is a read-only snapshot of a controller. Payload is set only in
// PhaseSuccess, Err only in PhaseError.
type State[T any] struct {
	Phase   Phase
	Payload T
	Err     error
}

// IsLoading reports whether the operation is still in flight.
func (s State[T]) IsLoading() bool { return s.Phase == PhasePending }

// ErrorMessage is the display string for a failed operation, empty otherwise.
func (s State[T]) ErrorMessage() string {
	if s.Phase != PhaseError {
		return ""
	}
	return domain.DisplayMessage(s.Err)
}

// Operation is one network round trip. It must honour ctx cancellation and
// report failure through the error return, never by panicking.
type Operation[T any] func(ctx context.Context) (T, error)

// Controller dispatches Operations and holds the state of the most recent
// one. Overlapping invocations do not race: each Invoke supersedes the
// previous generation, and a superseded response never overwrites state.
type Controller[T any] struct {
	name string
	log  zerolog.Logger

	mu    sync.Mutex
	gen   uint64
	state State[T]
}

// New creates an idle controller. The name labels logs and metrics.
func New[T any](name string, log zerolog.Logger) *Controller[T] {
	return &Controller[T]{
		name: name,
		log:  log.With().Str("controller", name).Logger(),
	}
}

// Name returns the controller's label.
func (c *Controller[T]) Name() string { return c.name }

// State returns a snapshot of the controller's current state.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Invoke transitions the controller to PhasePending, clearing any previous
// payload or error, and runs op on its own goroutine. The returned channel
// delivers this invocation's terminal state exactly once, whether or not the
// invocation is still current when it resolves.
//
// On success the controller transitions to PhaseSuccess and onSuccess (if
// non-nil) receives the payload; on failure it transitions to PhaseError and
// onSuccess is not called. A response belonging to a superseded generation is
// dropped without touching shared state, so the last *issued* request wins,
// not the last one to complete.
func (c *Controller[T]) Invoke(ctx context.Context, op Operation[T], onSuccess func(T)) <-chan State[T] {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.state = State[T]{Phase: PhasePending}
	c.mu.Unlock()

	requestID := uuid.NewString()
	ctx = WithRequestID(ctx, requestID)
	log := c.log.With().Str("request_id", requestID).Logger()
	log.Debug().Msg("request dispatched")

	done := make(chan State[T], 1)
	start := time.Now()

	go func() {
		payload, err := op(ctx)

		var terminal State[T]
		if err != nil {
			terminal = State[T]{Phase: PhaseError, Err: err}
		} else {
			terminal = State[T]{Phase: PhaseSuccess, Payload: payload}
		}

		c.mu.Lock()
		current := gen == c.gen
		if current {
			c.state = terminal
		}
		c.mu.Unlock()

		elapsed := time.Since(start)
		metrics.RequestDuration.WithLabelValues(c.name).Observe(elapsed.Seconds())

		switch {
		case !current:
			metrics.StaleResponsesTotal.WithLabelValues(c.name).Inc()
			log.Debug().Dur("elapsed", elapsed).Msg("stale response dropped")
		case err != nil:
			metrics.RequestsTotal.WithLabelValues(c.name, "error").Inc()
			log.Warn().Err(err).Dur("elapsed", elapsed).Msg("request failed")
		default:
			metrics.RequestsTotal.WithLabelValues(c.name, "success").Inc()
			log.Debug().Dur("elapsed", elapsed).Msg("request resolved")
		}

		if current && err == nil && onSuccess != nil {
			onSuccess(payload)
		}

		done <- terminal
	}()

	return done
}
