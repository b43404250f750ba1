package document

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*JSONFileRepository, string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.json")
	return NewJSONFileRepository(p), p
}

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_MissingFile(t *testing.T) {
	r, _ := newRepo(t)

	assert.False(t, r.Exists())
	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	r, p := newRepo(t)
	ctx := context.Background()

	doc := models.NewDataStore("admin", "aB3dE6gH")
	doc.NoteGroups = []models.NoteGroup{{
		ID: "g1", Name: "Work", Description: "desk", Color: "#ff0000", Order: 0,
		CreatedAt: "2024-01-01T00:00:00.000Z", UpdatedAt: "2024-01-01T00:00:00.000Z",
		Items: []models.NoteItem{{
			ID: "i1", Title: "vpn", Content: "user: bob", Order: 0,
			CreatedAt: "2024-01-01T00:00:00.000Z", UpdatedAt: "2024-01-01T00:00:00.000Z",
		}},
	}}

	require.NoError(t, r.Save(ctx, doc))
	assert.True(t, r.Exists())
	assert.Equal(t, p, r.Path())

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(doc, got))
}

func TestSave_PrettyPrinted(t *testing.T) {
	r, p := newRepo(t)

	require.NoError(t, r.Save(context.Background(), models.NewDataStore("admin", "pw")))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "{\n  \"user\": {\n    \"username\": \"admin\""), string(b))
}

func TestSave_NilDocument(t *testing.T) {
	r, _ := newRepo(t)
	require.Error(t, r.Save(context.Background(), nil))
	assert.False(t, r.Exists())
}

func TestLoad_CorruptFile(t *testing.T) {
	r, p := newRepo(t)
	writeRaw(t, p, `{ "user": { "username": "admin", `)

	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, ErrDocumentCorrupt)
}

func TestLoad_MigratesSnippetGroups(t *testing.T) {
	r, p := newRepo(t)
	writeRaw(t, p, `{
  "user": {"username": "admin", "password": "secret"},
  "snippetGroups": [
    {"id": "g1", "name": "Legacy", "items": [{"id": "i1", "title": "t", "content": "c", "order": 0}], "order": 0}
  ]
}`)

	doc, err := r.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, doc.NoteGroups, 1)
	assert.Equal(t, "Legacy", doc.NoteGroups[0].Name)
	assert.Len(t, doc.NoteGroups[0].Items, 1)
	require.NotNil(t, doc.BackupConfig)
	assert.Equal(t, models.DefaultBackupConfig(), *doc.BackupConfig)

	// the next save drops the legacy key
	require.NoError(t, r.Save(context.Background(), doc))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "snippetGroups")
	assert.Contains(t, string(b), "noteGroups")
}

func TestLoad_NoteGroupsWinOverSnippetGroups(t *testing.T) {
	r, p := newRepo(t)
	writeRaw(t, p, `{
  "user": {"username": "admin", "password": "secret"},
  "noteGroups": [{"id": "new", "name": "Current", "items": [], "order": 0}],
  "snippetGroups": [{"id": "old", "name": "Legacy", "items": [], "order": 0}]
}`)

	doc, err := r.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.NoteGroups, 1)
	assert.Equal(t, "new", doc.NoteGroups[0].ID)
}

func TestLoad_FillsMissingCollections(t *testing.T) {
	r, p := newRepo(t)
	writeRaw(t, p, `{
  "user": {"username": "admin", "password": "secret"},
  "backupConfig": {"enabled": false, "maxBackups": 3}
}`)

	doc, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.NoteGroups)
	assert.Empty(t, doc.NoteGroups)
	assert.Equal(t, models.BackupConfig{Enabled: false, MaxBackups: 3}, *doc.BackupConfig)
}

func TestDecode_GroupWithoutItems(t *testing.T) {
	doc, err := Decode([]byte(`{"user":{"username":"a","password":"b"},"noteGroups":[{"id":"g","name":"n","order":0}]}`))
	require.NoError(t, err)
	require.Len(t, doc.NoteGroups, 1)
	assert.NotNil(t, doc.NoteGroups[0].Items)
}

func TestDecode_RejectsDocumentWithoutUser(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"null", `null`},
		{"empty object", `{}`},
		{"null user", `{"user": null, "noteGroups": []}`},
		{"empty username", `{"user": {"username": "", "password": ""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.ErrorIs(t, err, ErrDocumentCorrupt)
		})
	}
}

func TestLoad_NullFileIsCorrupt(t *testing.T) {
	r, p := newRepo(t)
	writeRaw(t, p, `null`)

	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, ErrDocumentCorrupt)
}
