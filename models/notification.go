package models

import "time"

// NotificationKind names the event a notification describes.
type NotificationKind string

const (
	NotificationMeetupCreated     NotificationKind = "meetup_created"
	NotificationDiscussionCreated NotificationKind = "discussion_created"
	NotificationCommentCreated    NotificationKind = "comment_created"
)

// Notification is one delivery job handed to the background dispatcher
// after a confirmed create. Delivery itself is an external concern; the
// mutation path never waits for it.
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	ItemID    string           `json:"item_id"`
	ParentID  string           `json:"parent_id"`
	AuthorID  string           `json:"author_id"`
	Title     string           `json:"title"`
	CreatedAt time.Time        `json:"created_at"`
}
