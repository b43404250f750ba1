package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// SimpleItem is the lossy, human-facing form of a note.
type SimpleItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SimpleExport maps a group name to its notes.
type SimpleExport map[string][]SimpleItem

// FullExport is the backup/restore interchange format.
type FullExport struct {
	Version    string      `json:"version"`
	ExportedAt string      `json:"exportedAt"`
	NoteGroups []NoteGroup `json:"noteGroups"`
}

// ImportMode selects how ImportFull treats existing groups.
type ImportMode string

const (
	ImportMerge   ImportMode = "merge"
	ImportReplace ImportMode = "replace"
)

// ParseImportMode validates s.
func ParseImportMode(s string) (ImportMode, error) {
	switch m := ImportMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ImportMerge, ImportReplace:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrInvalidImportMode, s)
	}
}
