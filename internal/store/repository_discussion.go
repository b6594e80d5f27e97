package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

// discussionRepository is the PostgreSQL-backed implementation of
// [DiscussionRepository].
type discussionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDiscussionRepository constructs a [DiscussionRepository] backed by the
// provided database connection and logger.
func NewDiscussionRepository(db *DB, logger *logger.Logger) DiscussionRepository {
	logger.Debug().Msg("creating discussion repository")
	return &discussionRepository{
		db:     db,
		logger: logger,
	}
}

var discussionPages = keysetQuery{
	table: "discussions",
	columns: []string{
		"id", "group_id", "author_id", "title", "body", "status", "created_at", "deleted",
	},
	timeColumn:  "created_at",
	parentCol:   "group_id",
	newestFirst: true,
}

// FindPage runs one bounded keyset query over a group's threads and
// returns up to limit+1 rows in traversal order, newest first.
func (r *discussionRepository) FindPage(ctx context.Context, q feed.PageQuery) ([]models.Discussion, error) {
	log := logger.FromContext(ctx)

	sqlText, args, err := discussionPages.build(q)
	if err != nil {
		log.Err(err).Str("func", "*discussionRepository.FindPage").Msg("error: building page query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*discussionRepository.FindPage").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: page query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var page []models.Discussion
	for rows.Next() {
		var (
			d  models.Discussion
			id string
		)
		if err := rows.Scan(&id, &d.GroupID, &d.AuthorID, &d.Title, &d.Body,
			&d.Status, &d.CreatedAt, &d.Deleted); err != nil {
			log.Err(err).Str("func", "*discussionRepository.FindPage").Msg("error: scanning error")
			return nil, err
		}
		d.ID = models.ConfirmedID(id)
		page = append(page, d)
	}
	return page, rows.Err()
}

// GetDiscussion fetches one live thread row by identifier.
func (r *discussionRepository) GetDiscussion(ctx context.Context, id string) (models.Discussion, error) {
	log := logger.FromContext(ctx)

	var (
		d     models.Discussion
		rowID string
	)
	row := r.db.QueryRowContext(ctx, getDiscussion, id)
	err := row.Scan(&rowID, &d.GroupID, &d.AuthorID, &d.Title, &d.Body,
		&d.Status, &d.CreatedAt, &d.Deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Discussion{}, ErrDiscussionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*discussionRepository.GetDiscussion").Msg("error: lookup failed")
		return models.Discussion{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	d.ID = models.ConfirmedID(rowID)
	return d, nil
}

// CreateDiscussion persists a new thread and returns it with the
// server-assigned creation timestamp.
func (r *discussionRepository) CreateDiscussion(ctx context.Context, discussion models.Discussion) (models.Discussion, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDiscussion,
		discussion.ID.Value(), discussion.GroupID, discussion.AuthorID,
		discussion.Title, discussion.Body, discussion.Status)

	if err := row.Scan(&discussion.CreatedAt); err != nil {
		log.Err(err).Str("func", "*discussionRepository.CreateDiscussion").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Discussion{}, ErrDuplicateIdentifier
		default:
			return models.Discussion{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return discussion, nil
}

// DeleteDiscussion tombstones a thread.
func (r *discussionRepository) DeleteDiscussion(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteDiscussion, id)
	if err != nil {
		log.Err(err).Str("func", "*discussionRepository.DeleteDiscussion").Msg("error: tombstone update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDiscussionNotFound
	}
	return nil
}

// GroupOfDiscussion resolves the owning group of a thread, needed to look
// up the acting user's role when reading the thread's comments.
func (r *discussionRepository) GroupOfDiscussion(ctx context.Context, discussionID string) (string, error) {
	log := logger.FromContext(ctx)

	var groupID string
	err := r.db.QueryRowContext(ctx, groupOfDiscussion, discussionID).Scan(&groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrDiscussionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*discussionRepository.GroupOfDiscussion").Msg("error: lookup failed")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}
	return groupID, nil
}
