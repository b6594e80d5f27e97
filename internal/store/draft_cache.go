package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

const createDraftsTable = `CREATE TABLE IF NOT EXISTS drafts (
    id         TEXT PRIMARY KEY,
    collection TEXT NOT NULL,
    payload    BLOB NOT NULL,
    created_at TIMESTAMP NOT NULL
);`

// Draft is one locally cached unconfirmed submission. ID is the raw
// pending-identifier token the draft was saved under.
type Draft struct {
	ID         string
	Collection feed.CollectionKey
	Payload    []byte
	CreatedAt  time.Time
}

// DraftCache is a local SQLite store of unconfirmed drafts. A session
// owner saves the draft when a create is submitted and removes it on
// confirmation; after a rejected create the draft stays behind so the
// user can correct and resubmit it.
type DraftCache struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewDraftCache opens (or creates) the cache database at path. An empty
// path opens an in-memory cache that does not survive the process.
func NewDraftCache(path string, log *logger.Logger) (*DraftCache, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewDraftCache").Msg("error opening draft cache")
		return nil, fmt.Errorf("open draft cache: %w", err)
	}
	// one connection keeps writes serialized and makes :memory: share state
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(createDraftsTable); err != nil {
		log.Err(err).Str("func", "NewDraftCache").Msg("error creating drafts table")
		return nil, fmt.Errorf("create drafts table: %w", err)
	}

	return &DraftCache{db: db, logger: log}, nil
}

// SaveDraft persists one draft under its pending identifier. The payload
// is stored as JSON.
func (c *DraftCache) SaveDraft(ctx context.Context, id models.Identifier, collection feed.CollectionKey, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal draft payload: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO drafts (id, collection, payload, created_at) VALUES (?, ?, ?, ?)`,
		id.Value(), collection.String(), data, time.Now().UTC())
	if err != nil {
		c.logger.Err(err).Str("func", "*DraftCache.SaveDraft").Msg("error saving draft")
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// DeleteDraft removes one draft, typically after the create confirmed.
func (c *DraftCache) DeleteDraft(ctx context.Context, id models.Identifier) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id.Value())
	if err != nil {
		c.logger.Err(err).Str("func", "*DraftCache.DeleteDraft").Msg("error deleting draft")
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// ListDrafts returns the cached drafts of one collection, oldest first.
func (c *DraftCache) ListDrafts(ctx context.Context, collection feed.CollectionKey) ([]Draft, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, payload, created_at FROM drafts WHERE collection = ? ORDER BY created_at`,
		collection.String())
	if err != nil {
		c.logger.Err(err).Str("func", "*DraftCache.ListDrafts").Msg("error listing drafts")
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []Draft
	for rows.Next() {
		var d Draft
		if err := rows.Scan(&d.ID, &d.Payload, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Collection = collection
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

// Close releases the underlying database handle.
func (c *DraftCache) Close() error {
	return c.db.Close()
}
