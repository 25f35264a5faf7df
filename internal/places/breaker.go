// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/sendero/internal/metrics"
	"github.com/tomtom215/sendero/internal/models"
)

// BreakerProvider wraps a Provider with a circuit breaker. While the circuit
// is open calls fail fast with ErrProviderUnavailable. Not-found answers and
// caller cancellations do not count as failures.
type BreakerProvider struct {
	next   Provider
	cb     *gobreaker.CircuitBreaker[any]
	name   string
	logger zerolog.Logger
}

// NewBreakerProvider wraps next in a breaker named name.
func NewBreakerProvider(name string, next Provider, cfg BreakerConfig, logger zerolog.Logger) *BreakerProvider {
	log := logger.With().Str("component", "circuit_breaker").Str("breaker", name).Logger()

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	b := &BreakerProvider{next: next, name: name, logger: log}
	b.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				log.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("Opening circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info().Str("from", stateToString(from)).Str("to", stateToString(to)).Msg("Circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
		IsSuccessful: b.countsAsSuccess,
	})
	return b
}

func (b *BreakerProvider) countsAsSuccess(err error) bool {
	return err == nil || errors.Is(err, ErrPlaceNotFound) || errors.Is(err, context.Canceled)
}

// State returns the current breaker state name.
func (b *BreakerProvider) State() string {
	return stateToString(b.cb.State())
}

func (b *BreakerProvider) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			b.logger.Debug().Err(err).Msg("Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
		}
		if b.countsAsSuccess(err) {
			return nil, err
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// FetchNearby calls the wrapped provider through the breaker.
func (b *BreakerProvider) FetchNearby(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.Place, error) {
	result, err := b.execute(func() (any, error) {
		return b.next.FetchNearby(ctx, location, radiusMeters, limit)
	})
	if err != nil {
		return nil, err
	}
	list, ok := result.([]models.Place)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return list, nil
}

// FetchByID calls the wrapped provider through the breaker.
func (b *BreakerProvider) FetchByID(ctx context.Context, id string) (*models.Place, error) {
	result, err := b.execute(func() (any, error) {
		return b.next.FetchByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	place, ok := result.(*models.Place)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return place, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
