// Package jobs provides the durable outbox for sync jobs produced by the
// event router. Jobs are handed to whatever executor the host application
// runs; the queue guarantees at-least-once delivery.
package jobs

import (
	"context"
	"errors"

	"github.com/upfleet/synckit/pkg/api"
)

//go:generate moq -out queue_mock.go . Queue

// ErrJobNotFound is returned when acknowledging an unknown job
var ErrJobNotFound = errors.New("job not found")

// Queue accepts sync jobs for asynchronous execution
type Queue interface {
	// Enqueue appends a job to the queue.
	Enqueue(ctx context.Context, job *api.Job) error
}
