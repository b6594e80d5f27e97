package feed

import "context"

// ControllerState is the pagination controller's lifecycle state.
// Exhaustion is tracked per direction, not as a separate state: a
// direction with no further data makes the matching load call a no-op.
type ControllerState int

const (
	StateIdle ControllerState = iota
	StateLoading
	StateLoaded
)

// Controller exposes forward/backward page traversal with stable has-more
// signaling over a [PageProvider]. It accumulates the confirmed rows of
// every page it has loaded, in display order; failed fetches leave the
// retained rows and cursors untouched.
type Controller[T any] struct {
	provider PageProvider[T]
	primary  Direction
	limit    int

	state   ControllerState
	items   []T
	next    *Cursor
	prev    *Cursor
	hasNext bool
	hasPrev bool
}

// NewController constructs a controller that starts traversing in the
// primary direction with pages of up to limit items.
func NewController[T any](provider PageProvider[T], primary Direction, limit int) *Controller[T] {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Controller[T]{
		provider: provider,
		primary:  primary,
		limit:    limit,
	}
}

// LoadInitial runs the uncursored first fetch in the primary direction.
// The initial load is its own branch of the cursor logic: only the
// direction actually requested can report further data, the opposite
// direction starts out exhausted.
func (c *Controller[T]) LoadInitial(ctx context.Context) error {
	restore := c.state
	c.state = StateLoading

	page, err := c.provider.FetchPage(ctx, PageRequest{Direction: c.primary, Limit: c.limit})
	if err != nil {
		c.state = restore
		return err
	}

	c.items = page.Items
	c.next, c.prev = page.Next, page.Prev

	if len(page.Items) < c.limit && !page.More {
		// Fewer rows than requested and no overflow: there is nothing
		// further to page into in either direction.
		c.hasNext, c.hasPrev = false, false
	} else if c.primary == Forward {
		c.hasNext, c.hasPrev = page.More, false
	} else {
		c.hasNext, c.hasPrev = false, page.More
	}

	c.state = StateLoaded
	return nil
}

// LoadNext fetches the next page in display order and appends it to the
// retained rows. It is a no-op, not an error, when the forward direction
// is exhausted or no initial load has completed.
func (c *Controller[T]) LoadNext(ctx context.Context) error {
	if c.state != StateLoaded || !c.hasNext {
		return nil
	}

	c.state = StateLoading
	page, err := c.provider.FetchPage(ctx, PageRequest{Direction: Forward, Cursor: c.next, Limit: c.limit})
	if err != nil {
		c.state = StateLoaded
		return err
	}

	c.items = append(c.items, page.Items...)
	if page.Next != nil {
		c.next = page.Next
	}
	c.hasNext = page.More
	c.state = StateLoaded
	return nil
}

// LoadPrevious fetches the preceding page and prepends it to the retained
// rows. It is a no-op, not an error, when the backward direction is
// exhausted or no initial load has completed.
func (c *Controller[T]) LoadPrevious(ctx context.Context) error {
	if c.state != StateLoaded || !c.hasPrev {
		return nil
	}

	c.state = StateLoading
	page, err := c.provider.FetchPage(ctx, PageRequest{Direction: Backward, Cursor: c.prev, Limit: c.limit})
	if err != nil {
		c.state = StateLoaded
		return err
	}

	c.items = append(page.Items, c.items...)
	if page.Prev != nil {
		c.prev = page.Prev
	}
	c.hasPrev = page.More
	c.state = StateLoaded
	return nil
}

// Items returns the confirmed rows loaded so far, in display order. The
// returned slice is the controller's own; callers must not mutate it.
func (c *Controller[T]) Items() []T { return c.items }

// HasNext reports whether further data exists in the forward direction.
func (c *Controller[T]) HasNext() bool { return c.hasNext }

// HasPrev reports whether further data exists in the backward direction.
func (c *Controller[T]) HasPrev() bool { return c.hasPrev }

// State returns the controller's lifecycle state.
func (c *Controller[T]) State() ControllerState { return c.state }
