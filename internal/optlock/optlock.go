// Package optlock provides the optimistic concurrency guard used around
// tracked mutations: callers declare the version they based their change
// on, and the guard rejects the result unless the stored version advanced
// by exactly one.
package optlock

import (
	"context"
	"errors"
	"fmt"
)

// ErrVersionConflict is matched by errors.Is for any optimistic
// concurrency failure.
var ErrVersionConflict = errors.New("version conflict")

// ConflictError carries the versions involved in a failed check.
type ConflictError struct {
	Expected int64 // версия, на которой основывался вызывающий
	Actual   int64 // версия, полученная после операции
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: expected version %d after operation, got %d", e.Expected+1, e.Actual)
}

// Is makes errors.Is(err, ErrVersionConflict) match ConflictError values.
func (e *ConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}

// Versioned is implemented by operation results carrying a sync version.
type Versioned interface {
	SyncVersion() int64
}

// Execute runs op under an optimistic concurrency check.
//
// With a nil expected version no check is performed and the result is
// returned as is. Otherwise the result's version must equal expected+1:
// any other value means a concurrent writer got in between, and the call
// returns ConflictError.
func Execute[T Versioned](ctx context.Context, expected *int64, op func(context.Context) (T, error)) (T, error) {
	var zero T

	result, err := op(ctx)
	if err != nil {
		return zero, err
	}

	if expected == nil {
		return result, nil
	}

	if got := result.SyncVersion(); got != *expected+1 {
		return zero, &ConflictError{Expected: *expected, Actual: got}
	}

	return result, nil
}
