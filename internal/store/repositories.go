package store

import "github.com/velikanov/groupsync/internal/logger"

type Repositories struct {
	MeetupRepository     MeetupRepository
	DiscussionRepository DiscussionRepository
	CommentRepository    CommentRepository
	MembershipRepository MembershipRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		MeetupRepository:     NewMeetupRepository(db, log),
		DiscussionRepository: NewDiscussionRepository(db, log),
		CommentRepository:    NewCommentRepository(db, log),
		MembershipRepository: NewMembershipRepository(db, log),
	}
}
