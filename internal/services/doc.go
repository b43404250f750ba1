// Package services contains the notekeeper Data Store Manager.
//
// A Manager owns one data directory: the JSON document (data.json), the
// backups/ subdirectory, and the single authenticated session of the process.
// Every exported operation is a boundary operation: it never returns an error
// and never panics on bad input. Failures of any kind (not logged in, unknown
// id, I/O) collapse to false, nil, "" or an empty value, and the underlying
// error is written to the Logger for diagnostics.
//
// Operations are serialized by the Manager, so a mutation always runs to
// completion (including the save and the auto-backup it triggers) before the
// next operation starts. Nothing coordinates two processes that share a data
// directory.
//
// Key entry points
//
//   - NewManager opens a data directory.
//   - Login and Logout control the session.
//   - AddNoteGroup through ReorderNoteItems edit the document.
//   - ExportSimple, ExportMarkdown, ExportFull and ImportFull move data in and out.
//   - ManualBackup, ListBackups, RestoreBackup and the backup config accessors
//     manage snapshots.
package services
