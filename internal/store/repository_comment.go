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

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository].
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

var commentPages = keysetQuery{
	table: "comments",
	columns: []string{
		"id", "discussion_id", "author_id", "body", "moderation_status", "created_at", "deleted",
	},
	timeColumn:  "created_at",
	parentCol:   "discussion_id",
	newestFirst: true,
}

// FindPage runs one bounded keyset query over a thread's comments and
// returns up to limit+1 rows in traversal order, newest first.
func (r *commentRepository) FindPage(ctx context.Context, q feed.PageQuery) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	sqlText, args, err := commentPages.build(q)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.FindPage").Msg("error: building page query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*commentRepository.FindPage").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: page query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var page []models.Comment
	for rows.Next() {
		var (
			c  models.Comment
			id string
		)
		if err := rows.Scan(&id, &c.DiscussionID, &c.AuthorID, &c.Body,
			&c.Moderation, &c.CreatedAt, &c.Deleted); err != nil {
			log.Err(err).Str("func", "*commentRepository.FindPage").Msg("error: scanning error")
			return nil, err
		}
		c.ID = models.ConfirmedID(id)
		page = append(page, c)
	}
	return page, rows.Err()
}

// GetComment fetches one live comment row by identifier.
func (r *commentRepository) GetComment(ctx context.Context, id string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var (
		c     models.Comment
		rowID string
	)
	row := r.db.QueryRowContext(ctx, getComment, id)
	err := row.Scan(&rowID, &c.DiscussionID, &c.AuthorID, &c.Body,
		&c.Moderation, &c.CreatedAt, &c.Deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetComment").Msg("error: lookup failed")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	c.ID = models.ConfirmedID(rowID)
	return c, nil
}

// CreateComment persists a new comment and returns it with the
// server-assigned creation timestamp.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createComment,
		comment.ID.Value(), comment.DiscussionID, comment.AuthorID,
		comment.Body, comment.Moderation)

	if err := row.Scan(&comment.CreatedAt); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Comment{}, ErrDuplicateIdentifier
		case pgerrcode.ForeignKeyViolation:
			return models.Comment{}, ErrDiscussionNotFound
		default:
			return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return comment, nil
}

// DeleteComment tombstones a comment.
func (r *commentRepository) DeleteComment(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteComment, id)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error: tombstone update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// CountByDiscussion returns the visible comment count per thread in one
// grouped query. Tombstoned and moderation-flagged comments do not count.
func (r *commentRepository) CountByDiscussion(ctx context.Context, discussionIDs []string) (map[string]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, countComments, discussionIDs)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CountByDiscussion").Msg("error: count query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64, len(discussionIDs))
	for rows.Next() {
		var (
			id    string
			count int64
		)
		if err := rows.Scan(&id, &count); err != nil {
			log.Err(err).Str("func", "*commentRepository.CountByDiscussion").Msg("error: scanning error")
			return nil, err
		}
		counts[id] = count
	}
	return counts, rows.Err()
}
