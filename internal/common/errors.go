package common

import "errors"

var (
	// Session errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrWrongPassword  = errors.New("wrong password")
	ErrNoDocument     = errors.New("document not loaded")

	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Import errors.
	ErrInvalidImport     = errors.New("import payload has no note groups")
	ErrInvalidImportMode = errors.New("unknown import mode")

	// Backup errors.
	ErrInvalidBackupName = errors.New("invalid backup file name")
)
