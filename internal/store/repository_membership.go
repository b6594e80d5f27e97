package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

// membershipRepository is the PostgreSQL-backed implementation of
// [MembershipRepository].
type membershipRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMembershipRepository constructs a [MembershipRepository] backed by the
// provided database connection and logger.
func NewMembershipRepository(db *DB, logger *logger.Logger) MembershipRepository {
	logger.Debug().Msg("creating membership repository")
	return &membershipRepository{
		db:     db,
		logger: logger,
	}
}

// FindRole resolves a user's role within a group. A user with no
// membership row resolves to [models.RoleNone], not an error.
func (r *membershipRepository) FindRole(ctx context.Context, userID, groupID string) (models.Role, error) {
	log := logger.FromContext(ctx)

	var role models.Role
	err := r.db.QueryRowContext(ctx, findMemberRole, userID, groupID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RoleNone, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*membershipRepository.FindRole").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: role lookup failed")
		return models.RoleNone, fmt.Errorf("unexpected DB error: %w", err)
	}
	return role, nil
}

// SetRole upserts the membership row for one (group, user) pair.
func (r *membershipRepository) SetRole(ctx context.Context, membership models.Membership) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, setMemberRole, membership.GroupID, membership.UserID, membership.Role)
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.SetRole").Msg("error: upsert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("group %s does not exist: %w", membership.GroupID, err)
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}
	return nil
}
