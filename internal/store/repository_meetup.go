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

// meetupRepository is the PostgreSQL-backed implementation of
// [MeetupRepository]. It serves the keyset page queries of the meetup
// collection plus the batched RSVP lookups the annotator runs.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type meetupRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMeetupRepository constructs a [MeetupRepository] backed by the provided
// database connection and logger.
func NewMeetupRepository(db *DB, logger *logger.Logger) MeetupRepository {
	logger.Debug().Msg("creating meetup repository")
	return &meetupRepository{
		db:     db,
		logger: logger,
	}
}

var meetupPages = keysetQuery{
	table: "meetups",
	columns: []string{
		"id", "group_id", "author_id", "title", "description",
		"start_time", "duration_minutes", "status", "created_at", "deleted",
	},
	timeColumn: "start_time",
	parentCol:  "group_id",
}

// FindPage runs one bounded keyset query over a group's meetups and
// returns up to limit+1 rows in traversal order.
func (r *meetupRepository) FindPage(ctx context.Context, q feed.PageQuery) ([]models.Meetup, error) {
	log := logger.FromContext(ctx)

	sqlText, args, err := meetupPages.build(q)
	if err != nil {
		log.Err(err).Str("func", "*meetupRepository.FindPage").Msg("error: building page query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*meetupRepository.FindPage").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: page query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var page []models.Meetup
	for rows.Next() {
		var (
			m  models.Meetup
			id string
		)
		if err := rows.Scan(&id, &m.GroupID, &m.AuthorID, &m.Title, &m.Description,
			&m.StartTime, &m.DurationMinutes, &m.Status, &m.CreatedAt, &m.Deleted); err != nil {
			log.Err(err).Str("func", "*meetupRepository.FindPage").Msg("error: scanning error")
			return nil, err
		}
		m.ID = models.ConfirmedID(id)
		page = append(page, m)
	}
	return page, rows.Err()
}

// GetMeetup fetches one live meetup row by identifier.
func (r *meetupRepository) GetMeetup(ctx context.Context, id string) (models.Meetup, error) {
	log := logger.FromContext(ctx)

	var (
		m     models.Meetup
		rowID string
	)
	row := r.db.QueryRowContext(ctx, getMeetup, id)
	err := row.Scan(&rowID, &m.GroupID, &m.AuthorID, &m.Title, &m.Description,
		&m.StartTime, &m.DurationMinutes, &m.Status, &m.CreatedAt, &m.Deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Meetup{}, ErrMeetupNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*meetupRepository.GetMeetup").Msg("error: lookup failed")
		return models.Meetup{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	m.ID = models.ConfirmedID(rowID)
	return m, nil
}

// CreateMeetup persists a new meetup row and returns the meetup with its
// server-assigned creation timestamp.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateIdentifier].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *meetupRepository) CreateMeetup(ctx context.Context, meetup models.Meetup) (models.Meetup, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMeetup,
		meetup.ID.Value(), meetup.GroupID, meetup.AuthorID, meetup.Title,
		meetup.Description, meetup.StartTime, meetup.DurationMinutes, meetup.Status)

	if err := row.Scan(&meetup.CreatedAt); err != nil {
		log.Err(err).Str("func", "*meetupRepository.CreateMeetup").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Meetup{}, ErrDuplicateIdentifier
		default:
			return models.Meetup{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return meetup, nil
}

// DeleteMeetup tombstones a meetup. The row stays behind as a deletion
// marker; page queries keep returning it and the visibility filter drops
// it, so cursors anchored on the row stay valid.
func (r *meetupRepository) DeleteMeetup(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteMeetup, id)
	if err != nil {
		log.Err(err).Str("func", "*meetupRepository.DeleteMeetup").Msg("error: tombstone update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMeetupNotFound
	}
	return nil
}

// CountAttendees returns the RSVP count per meetup in one grouped query.
func (r *meetupRepository) CountAttendees(ctx context.Context, meetupIDs []string) (map[string]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, countAttendees, meetupIDs)
	if err != nil {
		log.Err(err).Str("func", "*meetupRepository.CountAttendees").Msg("error: count query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64, len(meetupIDs))
	for rows.Next() {
		var (
			id    string
			count int64
		)
		if err := rows.Scan(&id, &count); err != nil {
			log.Err(err).Str("func", "*meetupRepository.CountAttendees").Msg("error: scanning error")
			return nil, err
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

// FindAttendance returns the acting user's RSVP per meetup in one query.
// Meetups without a matching row are absent from the result.
func (r *meetupRepository) FindAttendance(ctx context.Context, actorID string, meetupIDs []string) (map[string]models.AttendanceStatus, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAttendance, actorID, meetupIDs)
	if err != nil {
		log.Err(err).Str("func", "*meetupRepository.FindAttendance").Msg("error: attendance query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	attendance := make(map[string]models.AttendanceStatus)
	for rows.Next() {
		var (
			id     string
			status models.AttendanceStatus
		)
		if err := rows.Scan(&id, &status); err != nil {
			log.Err(err).Str("func", "*meetupRepository.FindAttendance").Msg("error: scanning error")
			return nil, err
		}
		attendance[id] = status
	}
	return attendance, rows.Err()
}

// SetAttendance upserts one RSVP row.
func (r *meetupRepository) SetAttendance(ctx context.Context, attendee models.Attendee) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, setAttendance, attendee.MeetupID, attendee.UserID, attendee.Status)
	if err != nil {
		log.Err(err).Str("func", "*meetupRepository.SetAttendance").Msg("error: upsert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrMeetupNotFound
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}
	return nil
}
