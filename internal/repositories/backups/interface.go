package backups

import (
	"context"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// Snapshot name prefixes.
const (
	PrefixAuto   = "backup"
	PrefixManual = "manual"
)

// Repository describes backup snapshot storage.
type Repository interface {
	// Dir returns the directory holding the snapshots.
	Dir() string

	// Write stores doc as <prefix>-<timestamp>.json and returns its full path.
	// A snapshot taken within the same second replaces the previous one.
	Write(ctx context.Context, prefix string, at time.Time, doc *models.DataStore) (string, error)

	// List returns the names of all *.json files, newest first.
	List(ctx context.Context) ([]string, error)

	// Prune keeps the newest keep snapshots with the given prefix and deletes
	// the rest, returning the deleted names.
	Prune(ctx context.Context, prefix string, keep int) ([]string, error)

	// Read loads and migrates the snapshot with the given file name.
	Read(ctx context.Context, name string) (*models.DataStore, error)
}
