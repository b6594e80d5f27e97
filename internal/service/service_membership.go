package service

import (
	"context"
	"fmt"

	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/store"
	"github.com/velikanov/groupsync/internal/validators"
	"github.com/velikanov/groupsync/models"
)

type membershipService struct {
	members   store.MembershipRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewMembershipService(members store.MembershipRepository, logger *logger.Logger) MembershipService {
	return &membershipService{
		members:   members,
		validator: validators.NewDraftValidator(),
		logger:    logger,
	}
}

// SetRole assigns or replaces a user's role within a group. Only admins
// and owners may manage roles, and nobody can grant a role at or above
// their own level.
func (s *membershipService) SetRole(ctx context.Context, actorID string, membership models.Membership) error {
	if err := s.validator.Validate(ctx, membership); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	actorRole, err := s.members.FindRole(ctx, actorID, membership.GroupID)
	if err != nil {
		return fmt.Errorf("resolve role: %w", err)
	}
	if !actorRole.AtLeast(models.RoleAdmin) {
		return ErrUnauthorized
	}
	if membership.Role.Level() >= actorRole.Level() {
		return ErrUnauthorized
	}

	if err := s.members.SetRole(ctx, membership); err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	return nil
}
