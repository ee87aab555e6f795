package db

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres reports 57P03 (cannot_connect_now) while the server is starting.
const codeCannotConnectNow = "57P03"

// IsRetryable reports whether err means the database is not accepting
// connections yet.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeCannotConnectNow
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "the database system is starting up")
}

type RetryPolicy struct {
	Attempts int
	Base     time.Duration
	Max      time.Duration
}

// Backoff returns the wait after the given failed attempt (1-based):
// Base doubled per attempt, capped at Max.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := p.Base
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.Max > 0 && d >= p.Max {
			return p.Max
		}
	}
	if p.Max > 0 && d > p.Max {
		return p.Max
	}
	return d
}

// Do runs fn until it succeeds, returns a non-retryable error, or the
// attempts are used up.
func (p RetryPolicy) Do(ctx context.Context, logger *slog.Logger, fn func() error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if !IsRetryable(err) || attempt == attempts {
			return err
		}

		wait := p.Backoff(attempt)
		if logger != nil {
			logger.Warn("database not ready, retrying",
				"attempt", attempt,
				"max_attempts", attempts,
				"wait", wait,
				"error", err,
			)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}
	}
	return err
}
