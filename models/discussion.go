package models

import "time"

// DiscussionStatus is the visibility state of a discussion thread.
type DiscussionStatus string

const (
	DiscussionActive   DiscussionStatus = "active"
	DiscussionHidden   DiscussionStatus = "hidden"
	DiscussionArchived DiscussionStatus = "archived"
)

// Discussion is an append-only collection item: a thread inside a group,
// presented newest-first. CreatedAt is the ordering key; ties are broken
// by identifier.
type Discussion struct {
	ID        Identifier       `json:"id"`
	GroupID   string           `json:"group_id"`
	AuthorID  string           `json:"author_id"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Status    DiscussionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	Deleted   bool             `json:"-"`

	// CommentCount is derived from a batched count lookup, never stored.
	CommentCount int64 `json:"comment_count"`
}

// DiscussionDraft carries the caller-authored fields of a discussion create.
type DiscussionDraft struct {
	GroupID string `json:"group_id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}
