//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())
	err := cb.Execute(context.Background(), func() error {
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             "mongodb-dishes",
	})

	dbErr := errors.New("connection refused")

	err := cb.Execute(context.Background(), func() error {
		return dbErr
	})
	assert.Equal(t, dbErr, err)
	assert.Equal(t, StateClosed, cb.State())

	err = cb.Execute(context.Background(), func() error {
		return dbErr
	})
	assert.Equal(t, dbErr, err)
	assert.Equal(t, StateOpen, cb.State())

	// Open circuit short-circuits without calling the function
	called := false
	err = cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.Equal(t, ErrCircuitOpen, err)
	assert.False(t, called)
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "mongodb-catalog",
	})

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("timeout")
		})
	}
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	// First success after the timeout probes in half-open
	err := cb.Execute(context.Background(), func() error {
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, StateHalfOpen, cb.State())

	err = cb.Execute(context.Background(), func() error {
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "mongodb-logs",
	})

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("timeout")
		})
	}
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error {
		return errors.New("still down")
	})
	assert.Error(t, err)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, 0, stats.FailureCount)

	_ = cb.Execute(context.Background(), func() error {
		return errors.New("error")
	})

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		Timeout:          time.Second,
		Name:             "mongodb-dishes",
	})

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("flaky")
		})
	}
	_ = cb.Execute(context.Background(), func() error {
		return nil
	})

	// Two more failures stay under the threshold after the reset
	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("flaky")
		})
	}
	assert.Equal(t, StateClosed, cb.State())
	assert.False(t, cb.IsOpen())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.FailureThreshold)
	assert.Equal(t, 2, config.SuccessThreshold)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "mongodb", config.Name)
}
