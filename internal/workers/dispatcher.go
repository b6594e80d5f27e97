package workers

import (
	"context"
	"sync"
	"time"

	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

const (
	defaultQueueSize = 256
	sendTimeout      = 10 * time.Second
)

// Dispatcher delivers post-create notifications in the background. The
// mutation path hands a job over with [Dispatcher.Dispatch] and continues
// immediately; delivery failures are logged, never surfaced to the caller
// and never retried here.
type Dispatcher struct {
	sender Sender
	logger *logger.Logger

	queue chan models.Notification
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// NewDispatcher constructs a dispatcher with a bounded queue. A non-positive
// queueSize falls back to the default.
func NewDispatcher(sender Sender, queueSize int, log *logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Dispatcher{
		sender: sender,
		logger: log,
		queue:  make(chan models.Notification, queueSize),
	}
}

// Dispatch enqueues one notification. It never blocks: when the queue is
// full the job is dropped with a warning, because a slow delivery channel
// must not stall a confirmed mutation.
func (d *Dispatcher) Dispatch(n models.Notification) {
	select {
	case d.queue <- n:
	default:
		d.logger.Warn().
			Str("func", "*Dispatcher.Dispatch").
			Str("kind", string(n.Kind)).
			Str("item_id", n.ItemID).
			Msg("notification queue full, dropping job")
	}
}

// Run implements [Worker]. It starts the delivery loop in its own
// goroutine and returns.
func (d *Dispatcher) Run() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for n := range d.queue {
			d.deliver(n)
		}
	}()
}

func (d *Dispatcher) deliver(n models.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := d.sender.Send(ctx, n); err != nil {
		d.logger.Err(err).
			Str("func", "*Dispatcher.deliver").
			Str("kind", string(n.Kind)).
			Str("item_id", n.ItemID).
			Msg("notification delivery failed")
		return
	}
	d.logger.Debug().
		Str("func", "*Dispatcher.deliver").
		Str("kind", string(n.Kind)).
		Str("item_id", n.ItemID).
		Msg("notification delivered")
}

// Shutdown stops accepting jobs and waits for the queue to drain, or for
// ctx to expire, whichever comes first.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
