package collections

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/velikanov/groupsync/models"
)

func meetupWith(id string, status models.MeetupStatus) models.Meetup {
	return models.Meetup{
		ID:        models.ConfirmedID(id),
		GroupID:   "group-1",
		Status:    status,
		StartTime: time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC),
	}
}

func meetupIDs(items []models.Meetup) []string {
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, m.ID.Value())
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Meetup visibility matrix
// ─────────────────────────────────────────────────────────────────────────────

func TestMeetupVisibility_Apply(t *testing.T) {
	page := []models.Meetup{
		meetupWith("active", models.MeetupActive),
		meetupWith("hidden", models.MeetupHidden),
		meetupWith("archived", models.MeetupArchived),
		meetupWith("cancelled", models.MeetupCancelled),
	}

	tests := []struct {
		name string
		role models.Role
		want []string
	}{
		{
			name: "banned → only cancelled remains",
			role: models.RoleBanned,
			want: []string{"cancelled"},
		},
		{
			name: "member → hidden excluded, archived and cancelled marked by status",
			role: models.RoleMember,
			want: []string{"active", "archived", "cancelled"},
		},
		{
			name: "no membership row → same view as member",
			role: models.RoleNone,
			want: []string{"active", "archived", "cancelled"},
		},
		{
			name: "moderator → full view",
			role: models.RoleModerator,
			want: []string{"active", "hidden", "archived", "cancelled"},
		},
		{
			name: "owner → full view",
			role: models.RoleOwner,
			want: []string{"active", "hidden", "archived", "cancelled"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, meetupIDs(MeetupVisibility{}.Apply(page, tc.role)))
		})
	}
}

func TestMeetupVisibility_TombstonesExcludedForEveryone(t *testing.T) {
	gone := meetupWith("gone", models.MeetupActive)
	gone.Deleted = true
	page := []models.Meetup{gone, meetupWith("kept", models.MeetupActive)}

	for _, role := range []models.Role{models.RoleMember, models.RoleModerator, models.RoleOwner} {
		assert.Equal(t, []string{"kept"}, meetupIDs(MeetupVisibility{}.Apply(page, role)), "role %s", role)
	}
}

func TestMeetupVisibility_NeverDeniedUpstream(t *testing.T) {
	assert.False(t, MeetupVisibility{}.DeniedUpstream(models.RoleBanned),
		"banned meetup views are filtered item by item, not blanked")
}

// ─────────────────────────────────────────────────────────────────────────────
// Discussion visibility
// ─────────────────────────────────────────────────────────────────────────────

func TestDiscussionVisibility_Apply(t *testing.T) {
	now := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	page := []models.Discussion{
		{ID: models.ConfirmedID("active"), Status: models.DiscussionActive, CreatedAt: now},
		{ID: models.ConfirmedID("hidden"), Status: models.DiscussionHidden, CreatedAt: now},
		{ID: models.ConfirmedID("archived"), Status: models.DiscussionArchived, CreatedAt: now},
		{ID: models.ConfirmedID("gone"), Status: models.DiscussionActive, CreatedAt: now, Deleted: true},
	}

	ids := func(items []models.Discussion) []string {
		out := make([]string, 0, len(items))
		for _, d := range items {
			out = append(out, d.ID.Value())
		}
		return out
	}

	assert.Equal(t, []string{"active", "archived"}, ids(DiscussionVisibility{}.Apply(page, models.RoleMember)))
	assert.Equal(t, []string{"active", "hidden", "archived"}, ids(DiscussionVisibility{}.Apply(page, models.RoleAdmin)))
}

func TestDiscussionVisibility_BannedDeniedUpstream(t *testing.T) {
	assert.True(t, DiscussionVisibility{}.DeniedUpstream(models.RoleBanned))
	assert.False(t, DiscussionVisibility{}.DeniedUpstream(models.RoleMember))
}

// ─────────────────────────────────────────────────────────────────────────────
// Comment visibility
// ─────────────────────────────────────────────────────────────────────────────

func TestCommentVisibility_FlaggedCommentsExcludedForAllRoles(t *testing.T) {
	now := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	page := []models.Comment{
		{ID: models.ConfirmedID("ok"), Moderation: models.ModerationOK, CreatedAt: now},
		{ID: models.ConfirmedID("spam"), Moderation: models.ModerationSpam, CreatedAt: now},
		{ID: models.ConfirmedID("offensive"), Moderation: models.ModerationOffensive, CreatedAt: now},
		{ID: models.ConfirmedID("gone"), Moderation: models.ModerationOK, CreatedAt: now, Deleted: true},
	}

	for _, role := range []models.Role{models.RoleMember, models.RoleModerator, models.RoleOwner} {
		got := CommentVisibility{}.Apply(page, role)
		if assert.Len(t, got, 1, "role %s", role) {
			assert.Equal(t, "ok", got[0].ID.Value())
		}
	}
}

func TestCommentVisibility_BannedDeniedUpstream(t *testing.T) {
	assert.True(t, CommentVisibility{}.DeniedUpstream(models.RoleBanned))
	assert.False(t, CommentVisibility{}.DeniedUpstream(models.RoleModerator))
}
