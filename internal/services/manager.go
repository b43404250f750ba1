package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/filex"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/repositories/document"
	"github.com/google/uuid"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithClock replaces time.Now, e.g. to get distinct backup names in tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithPasswordGenerator replaces the generator of default passwords.
func WithPasswordGenerator(gen func() (string, error)) Option {
	return func(m *Manager) {
		m.genPassword = gen
	}
}

// WithDocumentRepository replaces the data.json repository.
func WithDocumentRepository(r document.Repository) Option {
	return func(m *Manager) {
		m.docs = r
	}
}

// session is the authenticated state of the process. doc is the cached
// document every operation reads and mutates.
type session struct {
	username string
	doc      *models.DataStore
}

// Manager mediates all access to one data directory.
type Manager struct {
	mu sync.Mutex

	dataDir     string
	docs        document.Repository
	logger      logging.Logger
	now         func() time.Time
	genPassword func() (string, error)
	newID       func() string

	session *session
}

// NewManager opens dataDir, creating it and its backup directory if needed.
// The document itself is created lazily on first access.
func NewManager(dataDir string, opts ...Option) (*Manager, error) {
	if _, err := filex.EnsureDir(dataDir); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	if _, err := filex.EnsureSubdDir(dataDir, common.BackupDirName); err != nil {
		return nil, fmt.Errorf("backup dir: %w", err)
	}

	m := &Manager{
		dataDir: dataDir,
		docs:    document.NewJSONFileRepository(filepath.Join(dataDir, common.DataFileName)),
		logger:  logging.Nop(),
		now:     time.Now,
		genPassword: func() (string, error) {
			return common.RandomAlphanumeric(common.GeneratedPasswordLength)
		},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "datamanager")
	return m, nil
}

// DataPath returns the location of data.json.
func (m *Manager) DataPath() string {
	return m.docs.Path()
}

func (m *Manager) timestamp() string {
	return models.FormatTimestamp(m.now())
}

func (m *Manager) defaultDocument() (*models.DataStore, error) {
	pw, err := m.genPassword()
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}
	return models.NewDataStore(common.DefaultUsername, pw), nil
}

// loadDataFromFile returns the stored document. A missing file yields a
// persisted default document. An unreadable or corrupt file yields a fresh
// default document that is NOT persisted; its contents are effectively lost
// to the session, which is logged.
func (m *Manager) loadDataFromFile(ctx context.Context) (*models.DataStore, error) {
	doc, err := m.docs.Load(ctx)
	if err == nil {
		return doc, nil
	}

	if errors.Is(err, document.ErrDocumentNotFound) {
		doc, err := m.defaultDocument()
		if err != nil {
			return nil, err
		}
		if err := m.saveDataToFile(ctx, doc); err != nil {
			m.logger.Error(ctx, "default document not persisted", "path", m.docs.Path(), "err", err)
		} else {
			m.logger.Info(ctx, "created default document", "path", m.docs.Path())
		}
		return doc, nil
	}

	m.logger.Warn(ctx, "data file unusable, falling back to a default document", "path", m.docs.Path(), "err", err)
	return m.defaultDocument()
}

// saveDataToFile rewrites data.json and, when enabled, takes an auto-backup.
// Backup problems are logged and do not fail the save.
func (m *Manager) saveDataToFile(ctx context.Context, doc *models.DataStore) error {
	if err := m.docs.Save(ctx, doc); err != nil {
		return err
	}
	if doc.Backup().Enabled {
		m.autoBackup(ctx, doc)
	}
	return nil
}

// requireDoc returns the session document.
func (m *Manager) requireDoc() (*models.DataStore, error) {
	if m.session == nil {
		return nil, common.ErrorUnauthorized
	}
	if m.session.doc == nil {
		return nil, common.ErrNoDocument
	}
	return m.session.doc, nil
}

// report collapses err into the boundary result and logs it.
func (m *Manager) report(ctx context.Context, op string, err error) bool {
	if err == nil {
		m.logger.Debug(ctx, "operation done", "op", op)
		return true
	}
	if isRejection(err) {
		m.logger.Warn(ctx, "operation rejected", "op", op, "err", err)
	} else {
		m.logger.Error(ctx, "operation failed", "op", op, "err", err)
	}
	return false
}

func isRejection(err error) bool {
	for _, target := range []error{
		common.ErrorUnauthorized,
		common.ErrNoDocument,
		common.ErrorNotFound,
		common.ErrWrongPassword,
		common.ErrInvalidImport,
		common.ErrInvalidImportMode,
		common.ErrInvalidBackupName,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
