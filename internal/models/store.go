// Package models defines the persisted document and the note entities it holds.
package models

import "github.com/dmitrijs2005/notekeeper/internal/common"

// User is the single credential pair guarding a store. The password is kept
// in plain text.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BackupConfig governs automatic backups taken after every save.
type BackupConfig struct {
	Enabled    bool   `json:"enabled"`
	MaxBackups int    `json:"maxBackups"`
	BackupPath string `json:"backupPath,omitempty"`
}

// DefaultBackupConfig is applied to documents that carry no backup settings.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{Enabled: true, MaxBackups: common.DefaultMaxBackups}
}

// DataStore is the root document serialized as data.json.
type DataStore struct {
	User         User          `json:"user"`
	NoteGroups   []NoteGroup   `json:"noteGroups"`
	BackupConfig *BackupConfig `json:"backupConfig,omitempty"`
}

// NewDataStore returns a fresh document for the given user.
func NewDataStore(username, password string) *DataStore {
	cfg := DefaultBackupConfig()
	return &DataStore{
		User:         User{Username: username, Password: password},
		NoteGroups:   []NoteGroup{},
		BackupConfig: &cfg,
	}
}

// Backup returns the effective backup settings.
func (d *DataStore) Backup() BackupConfig {
	if d == nil || d.BackupConfig == nil {
		return DefaultBackupConfig()
	}
	return *d.BackupConfig
}

// FindGroup returns the index of the group with id, or -1.
func (d *DataStore) FindGroup(id string) int {
	for i := range d.NoteGroups {
		if d.NoteGroups[i].ID == id {
			return i
		}
	}
	return -1
}

// FindGroupByName returns the index of the first group named name, or -1.
func (d *DataStore) FindGroupByName(name string) int {
	for i := range d.NoteGroups {
		if d.NoteGroups[i].Name == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy, so callers outside the manager cannot mutate
// the cached document.
func (d *DataStore) Clone() *DataStore {
	if d == nil {
		return nil
	}
	out := *d
	if d.BackupConfig != nil {
		cfg := *d.BackupConfig
		out.BackupConfig = &cfg
	}
	out.NoteGroups = make([]NoteGroup, len(d.NoteGroups))
	for i, g := range d.NoteGroups {
		out.NoteGroups[i] = g.Clone()
	}
	return &out
}
