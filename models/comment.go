package models

import "time"

// ModerationStatus is the classification a comment received from the
// external moderation pipeline. Anything other than ok keeps the comment
// out of every member's page, moderators included.
type ModerationStatus string

const (
	ModerationOK            ModerationStatus = "ok"
	ModerationSpam          ModerationStatus = "spam"
	ModerationOffensive     ModerationStatus = "offensive"
	ModerationInappropriate ModerationStatus = "inappropriate"
)

// Comment is an append-only collection item under a discussion, presented
// newest-first. CreatedAt is the ordering key; ties are broken by
// identifier.
type Comment struct {
	ID           Identifier       `json:"id"`
	DiscussionID string           `json:"discussion_id"`
	AuthorID     string           `json:"author_id"`
	Body         string           `json:"body"`
	Moderation   ModerationStatus `json:"moderation_status"`
	CreatedAt    time.Time        `json:"created_at"`
	Deleted      bool             `json:"-"`
}

// CommentDraft carries the caller-authored fields of a comment create.
type CommentDraft struct {
	DiscussionID string `json:"discussion_id"`
	Body         string `json:"body"`
}
