package document

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// rawDocument mirrors every shape data.json has had.
type rawDocument struct {
	User          *models.User         `json:"user"`
	NoteGroups    *[]models.NoteGroup  `json:"noteGroups"`
	SnippetGroups *[]models.NoteGroup  `json:"snippetGroups"`
	BackupConfig  *models.BackupConfig `json:"backupConfig"`
}

// Decode parses b and brings it to the current shape. It is also used for
// backup snapshots, which share the document format. A document without a
// user (including a bare null) is corrupt.
func Decode(b []byte) (*models.DataStore, error) {
	var raw *rawDocument
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentCorrupt, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: null document", ErrDocumentCorrupt)
	}
	if raw.User == nil || raw.User.Username == "" {
		return nil, fmt.Errorf("%w: missing user", ErrDocumentCorrupt)
	}
	return migrate(*raw), nil
}

func migrate(raw rawDocument) *models.DataStore {
	if raw.NoteGroups == nil && raw.SnippetGroups != nil {
		raw.NoteGroups = raw.SnippetGroups
	}

	doc := &models.DataStore{User: *raw.User, BackupConfig: raw.BackupConfig}

	if raw.NoteGroups != nil {
		doc.NoteGroups = *raw.NoteGroups
	}
	if doc.NoteGroups == nil {
		doc.NoteGroups = []models.NoteGroup{}
	}
	for i := range doc.NoteGroups {
		if doc.NoteGroups[i].Items == nil {
			doc.NoteGroups[i].Items = []models.NoteItem{}
		}
	}

	if doc.BackupConfig == nil {
		cfg := models.DefaultBackupConfig()
		doc.BackupConfig = &cfg
	}
	return doc
}

// Encode renders doc the way it is stored on disk.
func Encode(doc *models.DataStore) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}
