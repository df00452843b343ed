// Package middleware wraps user actions with logging and outcome reporting.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Action outcomes reported to an Observer.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Observer receives the outcome of every wrapped action.
type Observer interface {
	ObserveAction(action, outcome string)
}

type opIDKey struct{}

// OpID returns the operation ID stored in ctx by Action, or "" outside an action.
func OpID(ctx context.Context) string {
	id, _ := ctx.Value(opIDKey{}).(string)
	return id
}

// Action runs fn as the named user action.
// It tags the context with a fresh operation ID, logs the result with its
// duration and reports the outcome to obs (which may be nil).
// Errors that implement Recoverable() bool and return true are user mistakes
// (validation, duplicates, missing selection): they are logged at warn level
// and reported as rejected. Anything else is logged as an error.
func Action(ctx context.Context, name string, obs Observer, fn func(ctx context.Context) error) error {
	start := time.Now()
	opID := uuid.New().String()
	ctx = context.WithValue(ctx, opIDKey{}, opID)

	err := fn(ctx)

	duration := time.Since(start).Milliseconds()
	outcome := OutcomeOK
	switch {
	case err == nil:
		slog.Info("Action ok",
			"action", name,
			"op_id", opID,
			"duration_ms", duration,
		)
	case IsRecoverable(err):
		outcome = OutcomeRejected
		slog.Warn("Action rejected",
			"action", name,
			"op_id", opID,
			"reason", err.Error(),
			"duration_ms", duration,
		)
	default:
		outcome = OutcomeError
		slog.Error("Action failed",
			"action", name,
			"op_id", opID,
			"error", err,
			"duration_ms", duration,
		)
	}

	if obs != nil {
		obs.ObserveAction(name, outcome)
	}

	return err
}

// IsRecoverable reports whether err (or an error it wraps) marks itself as
// recoverable by the user.
func IsRecoverable(err error) bool {
	var r interface{ Recoverable() bool }
	return errors.As(err, &r) && r.Recoverable()
}
