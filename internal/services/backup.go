package services

import (
	"context"
	"path/filepath"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/repositories/backups"
)

func (m *Manager) defaultBackupDir() string {
	return filepath.Join(m.dataDir, common.BackupDirName)
}

// backupDirFor resolves the backup directory configured by doc.
func (m *Manager) backupDirFor(doc *models.DataStore) string {
	if p := doc.Backup().BackupPath; p != "" {
		return p
	}
	return m.defaultBackupDir()
}

func (m *Manager) backupRepo() backups.Repository {
	var doc *models.DataStore
	if m.session != nil {
		doc = m.session.doc
	}
	return backups.NewFileRepository(m.backupDirFor(doc))
}

// autoBackup snapshots doc and prunes old automatic snapshots.
func (m *Manager) autoBackup(ctx context.Context, doc *models.DataStore) {
	cfg := doc.Backup()
	repo := backups.NewFileRepository(m.backupDirFor(doc))

	path, err := repo.Write(ctx, backups.PrefixAuto, m.now(), doc)
	if err != nil {
		m.logger.Error(ctx, "auto-backup failed", "dir", repo.Dir(), "err", err)
		return
	}
	m.logger.Debug(ctx, "auto-backup written", "path", path)

	removed, err := repo.Prune(ctx, backups.PrefixAuto, cfg.MaxBackups)
	if err != nil {
		m.logger.Error(ctx, "backup pruning incomplete", "dir", repo.Dir(), "err", err)
	}
	if len(removed) > 0 {
		m.logger.Debug(ctx, "pruned auto-backups", "removed", len(removed), "keep", cfg.MaxBackups)
	}
}

// ManualBackup snapshots the session document under a manual- name, which
// pruning never touches. It returns the path written, or "".
func (m *Manager) ManualBackup(ctx context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := m.requireDoc()
	if err != nil {
		m.report(ctx, "backup:manual", err)
		return ""
	}
	path, err := m.backupRepo().Write(ctx, backups.PrefixManual, m.now(), doc)
	if err != nil {
		m.report(ctx, "backup:manual", err)
		return ""
	}
	m.logger.Info(ctx, "manual backup written", "path", path)
	return path
}

// ListBackups returns the backup file names, newest first.
func (m *Manager) ListBackups(ctx context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names, err := m.backupRepo().List(ctx)
	if err != nil {
		m.report(ctx, "backup:list", err)
		return []string{}
	}
	return names
}

// RestoreBackup replaces the session document with the named backup and
// saves it, which takes a fresh auto-backup of the restored state.
func (m *Manager) RestoreBackup(ctx context.Context, name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "backup:restore", m.restoreBackup(ctx, name))
}

func (m *Manager) restoreBackup(ctx context.Context, name string) error {
	if _, err := m.requireDoc(); err != nil {
		return err
	}
	doc, err := m.backupRepo().Read(ctx, name)
	if err != nil {
		return err
	}
	m.session.doc = doc
	m.logger.Info(ctx, "restored backup", "name", name)
	return m.saveDataToFile(ctx, doc)
}

// GetBackupConfig returns the session's backup settings, or the defaults.
func (m *Manager) GetBackupConfig(ctx context.Context) models.BackupConfig {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return models.DefaultBackupConfig()
	}
	return m.session.doc.Backup()
}

// SetBackupConfig stores cfg in the session document.
func (m *Manager) SetBackupConfig(ctx context.Context, cfg models.BackupConfig) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "backup:setConfig", m.setBackupConfig(ctx, cfg))
}

func (m *Manager) setBackupConfig(ctx context.Context, cfg models.BackupConfig) error {
	doc, err := m.requireDoc()
	if err != nil {
		return err
	}
	doc.BackupConfig = &cfg
	return m.saveDataToFile(ctx, doc)
}

// GetBackupDir returns the directory backups are written to.
func (m *Manager) GetBackupDir() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.backupRepo().Dir()
}
