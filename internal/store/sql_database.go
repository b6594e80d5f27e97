package store

import "github.com/velikanov/groupsync/migrations"

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
