package document

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/notekeeper/internal/models"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentCorrupt  = errors.New("document corrupt")
)

// Repository describes persistence of the root document.
type Repository interface {
	// Path returns the location of the document.
	Path() string

	// Exists reports whether the document has been written at least once.
	Exists() bool

	// Load reads, decodes and migrates the document.
	Load(ctx context.Context) (*models.DataStore, error)

	// Save rewrites the whole document.
	Save(ctx context.Context, doc *models.DataStore) error
}
