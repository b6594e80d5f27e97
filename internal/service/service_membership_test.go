package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/velikanov/groupsync/internal/mock"
	"github.com/velikanov/groupsync/models"
)

func TestMembershipService_SetRole_AdminAssignsModerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := mock.NewMockMembershipRepository(ctrl)
	svc := NewMembershipService(members, testLogger())
	ctx := context.Background()

	target := models.Membership{GroupID: "g1", UserID: "u2", Role: models.RoleModerator}

	members.EXPECT().FindRole(ctx, "admin", "g1").Return(models.RoleAdmin, nil)
	members.EXPECT().SetRole(ctx, target).Return(nil)

	require.NoError(t, svc.SetRole(ctx, "admin", target))
}

func TestMembershipService_SetRole_ModeratorRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := mock.NewMockMembershipRepository(ctrl)
	svc := NewMembershipService(members, testLogger())
	ctx := context.Background()

	members.EXPECT().FindRole(ctx, "mod", "g1").Return(models.RoleModerator, nil)

	err := svc.SetRole(ctx, "mod", models.Membership{GroupID: "g1", UserID: "u2", Role: models.RoleMember})

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestMembershipService_SetRole_CannotGrantOwnLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := mock.NewMockMembershipRepository(ctrl)
	svc := NewMembershipService(members, testLogger())
	ctx := context.Background()

	members.EXPECT().FindRole(ctx, "admin", "g1").Return(models.RoleAdmin, nil)

	err := svc.SetRole(ctx, "admin", models.Membership{GroupID: "g1", UserID: "u2", Role: models.RoleAdmin})

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestMembershipService_SetRole_OwnerBansMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := mock.NewMockMembershipRepository(ctrl)
	svc := NewMembershipService(members, testLogger())
	ctx := context.Background()

	target := models.Membership{GroupID: "g1", UserID: "troll", Role: models.RoleBanned}

	members.EXPECT().FindRole(ctx, "owner", "g1").Return(models.RoleOwner, nil)
	members.EXPECT().SetRole(ctx, target).Return(nil)

	require.NoError(t, svc.SetRole(ctx, "owner", target))
}

func TestMembershipService_SetRole_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := mock.NewMockMembershipRepository(ctrl)
	svc := NewMembershipService(members, testLogger())

	err := svc.SetRole(context.Background(), "admin", models.Membership{GroupID: "g1", UserID: "u2", Role: "king"})

	require.ErrorIs(t, err, ErrValidationFailed)
}
