package store

import (
	"database/sql"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/migrations"
)

// DB wraps the local sqlite connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
