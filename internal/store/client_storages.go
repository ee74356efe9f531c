package store

import (
	"context"
	"fmt"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/config"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed to the layers above.
type ClientStorages struct {
	// SnapshotRepository keeps the last activated remote configuration.
	SnapshotRepository SnapshotRepository

	db *DB
}

// NewClientStorages opens the local sqlite database named in cfg.DB.DSN,
// runs pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SnapshotRepository: NewSnapshotRepository(db, logger),
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
