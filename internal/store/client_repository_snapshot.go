package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

const (
	snapshotsTable = "remote_config_snapshots"
	// activeSnapshotID is the primary key of the only stored snapshot row.
	activeSnapshotID = 1
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository returns a sqlite-backed [SnapshotRepository].
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot models.ConfigSnapshot) error {
	entries, err := json.Marshal(snapshot.Entries)
	if err != nil {
		return fmt.Errorf("%w: encode entries: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := sq.Insert(snapshotsTable).
		Columns("id", "entries", "fingerprint", "fetched_at").
		Values(activeSnapshotID, string(entries), snapshot.Fingerprint, snapshot.FetchedAt.UnixMilli()).
		Suffix("ON CONFLICT(id) DO UPDATE SET entries = excluded.entries, fingerprint = excluded.fingerprint, fetched_at = excluded.fetched_at").
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "snapshotRepository.SaveSnapshot").
			Str("fingerprint", snapshot.Fingerprint).
			Msg("failed to upsert remote config snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *snapshotRepository) LoadSnapshot(ctx context.Context) (models.ConfigSnapshot, error) {
	query, args, err := sq.Select("entries", "fingerprint", "fetched_at").
		From(snapshotsTable).
		Where(sq.Eq{"id": activeSnapshotID}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return models.ConfigSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		entries     string
		fingerprint string
		fetchedAt   int64
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&entries, &fingerprint, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ConfigSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "snapshotRepository.LoadSnapshot").
			Msg("failed to query remote config snapshot")
		return models.ConfigSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	snapshot := models.ConfigSnapshot{
		Fingerprint: fingerprint,
		FetchedAt:   time.UnixMilli(fetchedAt),
	}
	if err = json.Unmarshal([]byte(entries), &snapshot.Entries); err != nil {
		return models.ConfigSnapshot{}, fmt.Errorf("%w: decode entries: %w", ErrScanningRow, err)
	}

	return snapshot, nil
}
