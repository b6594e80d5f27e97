// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers in a unified way, and the notification Dispatcher that delivers
// post-create notifications off the mutation path.
package workers

import (
	"context"

	"github.com/velikanov/groupsync/models"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// Sender delivers one notification to its recipients. Implementations
// wrap the external delivery channel (email dispatch, push gateway).
type Sender interface {
	Send(ctx context.Context, n models.Notification) error
}
