package service

import (
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/store"
)

type Services struct {
	MeetupService     MeetupService
	DiscussionService DiscussionService
	CommentService    CommentService
	MembershipService MembershipService
}

func NewServices(repos *store.Repositories, dispatcher NotificationDispatcher, logger *logger.Logger) *Services {
	return &Services{
		MeetupService:     NewMeetupService(repos.MeetupRepository, repos.MembershipRepository, dispatcher, logger),
		DiscussionService: NewDiscussionService(repos.DiscussionRepository, repos.CommentRepository, repos.MembershipRepository, dispatcher, logger),
		CommentService:    NewCommentService(repos.CommentRepository, repos.DiscussionRepository, repos.MembershipRepository, dispatcher, logger),
		MembershipService: NewMembershipService(repos.MembershipRepository, logger),
	}
}
