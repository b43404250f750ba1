// Package document persists the root notekeeper document as one JSON file.
//
// # Overview
//
// Repository loads, migrates and saves a models.DataStore. The file is
// rewritten as a whole on every save (pretty-printed, two-space indent) via a
// temp file and rename, so it is never observed half-written.
//
// # Migration
//
// Load applies the only schema change the format has seen: a legacy
// "snippetGroups" array is renamed to "noteGroups" when the latter is absent.
// Missing "noteGroups" becomes [], missing "backupConfig" becomes the default
// {enabled: true, maxBackups: 10}, and a group without "items" gets [].
//
// # Errors
//
// Load distinguishes ErrDocumentNotFound from ErrDocumentCorrupt so the
// caller can log the real cause before falling back to a default document.
package document
