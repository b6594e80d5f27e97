package feed

// Page is one trimmed slice of a collection in display order. Items never
// exceeds the requested limit; the overflow row fetched to detect further
// data is consumed during trimming and never surfaced.
//
// Next and Prev are resume positions derived from the last retained row of
// the corresponding traversal; a fetch populates only the cursor of the
// direction it actually ran (an uncursored initial load therefore never
// fabricates a cursor for the opposite direction). More reports whether
// the store returned limit+1 rows for the requested direction.
type Page[T any] struct {
	Items []T     `json:"items"`
	Next  *Cursor `json:"next_cursor,omitempty"`
	Prev  *Cursor `json:"prev_cursor,omitempty"`
	More  bool    `json:"has_more"`
}

// PageRequest describes one page fetch: which way to move, where to resume
// from (nil for an initial load) and how many items to retain.
type PageRequest struct {
	Direction Direction
	Cursor    *Cursor
	Limit     int
}

// Empty reports whether the page carries no items.
func (p Page[T]) Empty() bool { return len(p.Items) == 0 }
