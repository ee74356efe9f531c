package store

import (
	"context"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SnapshotRepository persists the last activated remote configuration
// snapshot so that it survives restarts.
type SnapshotRepository interface {
	// SaveSnapshot replaces the stored snapshot with snapshot.
	SaveSnapshot(ctx context.Context, snapshot models.ConfigSnapshot) error
	// LoadSnapshot returns the stored snapshot, or [ErrSnapshotNotFound].
	LoadSnapshot(ctx context.Context) (models.ConfigSnapshot, error)
}
