// Package common contains shared constants and sentinel errors used across
// notekeeper components. Callers should use errors.Is to match the errors.
package common

const (
	// DataFileName is the name of the main document inside the data directory.
	DataFileName = "data.json"

	// BackupDirName is the default backup subdirectory of the data directory.
	BackupDirName = "backups"

	// DefaultUsername is the user created together with a fresh document.
	DefaultUsername = "admin"

	// GeneratedPasswordLength is the length of passwords produced for a fresh document.
	GeneratedPasswordLength = 8

	// DefaultMaxBackups is the auto-backup retention of a fresh document.
	DefaultMaxBackups = 10

	// ExportVersion tags full exports.
	ExportVersion = "2.0"

	// PasswordEnvName can carry the store password for non-interactive CLI use.
	PasswordEnvName = "NOTEKEEPER_PASSWORD"
)
