package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []models.Notification
	err  error
}

func (s *recordingSender) Send(_ context.Context, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, n)
	return nil
}

func (s *recordingSender) delivered() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.sent...)
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 8, logger.Nop())
	d.Run()

	d.Dispatch(models.Notification{Kind: models.NotificationMeetupCreated, ItemID: "m1"})
	d.Dispatch(models.Notification{Kind: models.NotificationCommentCreated, ItemID: "c1"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Shutdown(ctx))

	sent := sender.delivered()
	require.Len(t, sent, 2)
	assert.Equal(t, "m1", sent[0].ItemID)
	assert.Equal(t, "c1", sent[1].ItemID)
}

func TestDispatcher_DispatchNeverBlocksWhenQueueFull(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 1, logger.Nop())
	// The delivery loop is deliberately not running, so the queue fills.

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Dispatch(models.Notification{ItemID: "n"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}

func TestDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(sender, 8, logger.Nop())
	d.Run()

	d.Dispatch(models.Notification{ItemID: "m1"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, d.Shutdown(ctx), "a failing sender must not wedge shutdown")
}

func TestWorkers_RunAll(t *testing.T) {
	var order []int
	mk := func(id int) Worker { return workerFunc(func() { order = append(order, id) }) }

	NewWorkers(mk(1), mk(2), mk(3)).Run()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_RunEmpty(t *testing.T) {
	assert.NotPanics(t, func() { NewWorkers().Run() })
}

type workerFunc func()

func (f workerFunc) Run() { f() }
