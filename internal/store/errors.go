package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned by LoadSnapshot when no remote
	// configuration snapshot has been persisted yet.
	ErrSnapshotNotFound = errors.New("remote config snapshot not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects a statement.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be decoded.
	ErrScanningRow = errors.New("error scanning sql row")
)
