package backups

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/filex"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/repositories/document"
)

// FileRepository keeps snapshots as plain files in one directory.
type FileRepository struct {
	dir string
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

func (r *FileRepository) Dir() string {
	return r.dir
}

func (r *FileRepository) Write(ctx context.Context, prefix string, at time.Time, doc *models.DataStore) (string, error) {
	if _, err := filex.EnsureDir(r.dir); err != nil {
		return "", err
	}

	b, err := document.Encode(doc)
	if err != nil {
		return "", err
	}

	path := filepath.Join(r.dir, FileName(prefix, at))
	if err := filex.WriteFileAtomic(path, b, 0o600); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}

func (r *FileRepository) List(ctx context.Context) ([]string, error) {
	names, err := r.names(func(n string) bool { return strings.HasSuffix(n, ".json") })
	if err != nil {
		return nil, err
	}

	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(timestampPart(b), timestampPart(a)); c != 0 {
			return c
		}
		return cmp.Compare(b, a)
	})
	return names, nil
}

func (r *FileRepository) Prune(ctx context.Context, prefix string, keep int) ([]string, error) {
	names, err := r.names(func(n string) bool {
		return strings.HasPrefix(n, prefix+"-") && strings.HasSuffix(n, ".json")
	})
	if err != nil {
		return nil, err
	}

	keep = max(keep, 0)
	if len(names) <= keep {
		return nil, nil
	}

	slices.Sort(names)
	slices.Reverse(names)

	var removed []string
	var errs []error
	for _, n := range names[keep:] {
		if err := os.Remove(filepath.Join(r.dir, n)); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", n, err))
			continue
		}
		removed = append(removed, n)
	}
	return removed, errors.Join(errs...)
}

func (r *FileRepository) Read(ctx context.Context, name string) (*models.DataStore, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("backup %s: %w", name, common.ErrorNotFound)
		}
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return document.Decode(b)
}

func (r *FileRepository) names(keep func(string) bool) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !keep(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// validateName accepts bare file names only, so a restore cannot reach
// outside the backup directory.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", common.ErrInvalidBackupName, name)
	}
	return nil
}
