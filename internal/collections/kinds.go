// Package collections binds the generic feed engine to the concrete
// collection variants of the application: meetups and discussions of a
// group, comments of a discussion. Each variant contributes its ordering,
// its visibility policy and its derived-field annotator; the engine stays
// agnostic of all three.
package collections

import "github.com/velikanov/groupsync/internal/feed"

const (
	KindMeetups     = "meetups"
	KindDiscussions = "discussions"
	KindComments    = "comments"
)

// MeetupsOf names the meetup collection of one group.
func MeetupsOf(groupID string) feed.CollectionKey {
	return feed.CollectionKey{Kind: KindMeetups, Parent: groupID}
}

// DiscussionsOf names the discussion collection of one group.
func DiscussionsOf(groupID string) feed.CollectionKey {
	return feed.CollectionKey{Kind: KindDiscussions, Parent: groupID}
}

// CommentsOf names the comment collection of one discussion.
func CommentsOf(discussionID string) feed.CollectionKey {
	return feed.CollectionKey{Kind: KindComments, Parent: discussionID}
}
