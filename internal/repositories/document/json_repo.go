package document

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/filex"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// JSONFileRepository stores the document in a single JSON file.
type JSONFileRepository struct {
	path string
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

func (r *JSONFileRepository) Path() string {
	return r.path
}

func (r *JSONFileRepository) Exists() bool {
	return filex.Exists(r.path)
}

func (r *JSONFileRepository) Load(ctx context.Context) (*models.DataStore, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(b)
}

func (r *JSONFileRepository) Save(ctx context.Context, doc *models.DataStore) error {
	if doc == nil {
		return errors.New("nil document")
	}
	b, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(r.path, b, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
