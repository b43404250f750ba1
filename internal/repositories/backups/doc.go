// Package backups stores timestamped snapshots of the root document.
//
// Snapshots are named <prefix>-<YYYY-MM-DDTHH-MM-SS>.json, where the time is
// the wall clock in the fixed UTC+8 zone whatever the host timezone is. The
// name is fixed-width and zero-padded, so sorting names of one prefix
// lexically sorts them chronologically; pruning relies on that instead of
// file modification times.
package backups
