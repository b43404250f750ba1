package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_WrongThenRightCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.False(t, f.m.Login(ctx, common.DefaultUsername, "nope"))
	assert.False(t, f.m.IsAuthenticated())
	assert.False(t, f.m.Login(ctx, "root", testPassword))
	assert.False(t, f.m.IsAuthenticated())

	assert.True(t, f.m.Login(ctx, common.DefaultUsername, testPassword))
	assert.True(t, f.m.IsAuthenticated())
}

func TestLogin_FailureKeepsExistingSession(t *testing.T) {
	f := newLoggedIn(t)
	ctx := context.Background()
	f.addGroups(t, "Work")

	assert.False(t, f.m.Login(ctx, common.DefaultUsername, "wrong"))
	assert.True(t, f.m.IsAuthenticated())
	assert.Len(t, f.m.LoadData(ctx).NoteGroups, 1)
}

func TestLogout(t *testing.T) {
	f := newLoggedIn(t)
	ctx := context.Background()

	f.m.Logout(ctx)
	assert.False(t, f.m.IsAuthenticated())
	assert.Nil(t, f.m.LoadData(ctx))

	f.m.Logout(ctx)
	assert.False(t, f.m.IsAuthenticated())
}

func TestFirstRun_InitialPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.True(t, f.m.IsFirstRun())
	assert.True(t, f.m.IsUsingDefaultPassword(ctx))

	pw, ok := f.m.GetInitialPassword(ctx)
	require.True(t, ok)
	assert.Equal(t, testPassword, pw)
	assert.False(t, f.m.IsFirstRun())
	assert.FileExists(t, f.m.DataPath())

	pw, ok = f.m.GetInitialPassword(ctx)
	require.True(t, ok)
	assert.Equal(t, testPassword, pw, "the stored password is reported again")
}

func TestGeneratedPasswordDefault(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	require.NoError(t, err)

	pw, ok := m.GetInitialPassword(context.Background())
	require.True(t, ok)
	assert.Len(t, pw, common.GeneratedPasswordLength)
	assert.True(t, common.LooksGenerated(pw))
	assert.True(t, m.Login(context.Background(), common.DefaultUsername, pw))
}

func TestChangePassword(t *testing.T) {
	f := newLoggedIn(t)
	ctx := context.Background()

	assert.False(t, f.m.ChangePassword(ctx, "wrong", "correct horse"))
	require.True(t, f.m.ChangePassword(ctx, testPassword, "correct horse"))

	assert.Equal(t, "correct horse", f.readDisk(t).User.Password)
	assert.False(t, f.m.IsUsingDefaultPassword(ctx))
	_, ok := f.m.GetInitialPassword(ctx)
	assert.False(t, ok)

	f.m.Logout(ctx)
	assert.False(t, f.m.Login(ctx, common.DefaultUsername, testPassword))
	assert.True(t, f.m.Login(ctx, common.DefaultUsername, "correct horse"))
}

func TestChangePassword_ToGeneratedLookingValue(t *testing.T) {
	f := newLoggedIn(t)
	ctx := context.Background()

	require.True(t, f.m.ChangePassword(ctx, testPassword, "Abcd1234"))
	assert.True(t, f.m.IsUsingDefaultPassword(ctx), "detection is by shape only")
}

func TestOperations_RequireSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.m

	checks := map[string]func() bool{
		"changePassword": func() bool { return m.ChangePassword(ctx, testPassword, "x") },
		"saveData":       func() bool { return m.SaveData(ctx, models.NewDataStore("a", "b")) },
		"addGroup":       func() bool { return m.AddNoteGroup(ctx, models.NoteGroupInput{Name: "x"}) },
		"updateGroup":    func() bool { return m.UpdateNoteGroup(ctx, "g", models.NoteGroupPatch{}) },
		"deleteGroup":    func() bool { return m.DeleteNoteGroup(ctx, "g") },
		"reorderGroups":  func() bool { return m.ReorderNoteGroups(ctx, []string{"g"}) },
		"addItem":        func() bool { return m.AddNoteItem(ctx, "g", models.NoteItemInput{Title: "x"}) },
		"updateItem":     func() bool { return m.UpdateNoteItem(ctx, "g", "i", models.NoteItemPatch{}) },
		"deleteItem":     func() bool { return m.DeleteNoteItem(ctx, "g", "i") },
		"reorderItems":   func() bool { return m.ReorderNoteItems(ctx, "g", []string{"i"}) },
		"importFull": func() bool {
			return m.ImportFull(ctx, &models.FullExport{NoteGroups: []models.NoteGroup{{Name: "x"}}}, models.ImportMerge)
		},
		"restoreBackup":   func() bool { return m.RestoreBackup(ctx, "backup-2024-01-01T00-00-00.json") },
		"setBackupConfig": func() bool { return m.SetBackupConfig(ctx, models.BackupConfig{}) },
	}
	for name, op := range checks {
		t.Run(name, func(t *testing.T) {
			assert.False(t, op())
		})
	}

	assert.Nil(t, m.LoadData(ctx))
	assert.Nil(t, m.Groups(ctx))
	_, ok := m.Group(ctx, "g")
	assert.False(t, ok)
	assert.Empty(t, m.ExportSimple(ctx))
	assert.Empty(t, m.ExportMarkdown(ctx))
	assert.Empty(t, m.ExportFull(ctx).NoteGroups)
	assert.Empty(t, m.ManualBackup(ctx))
	assert.Equal(t, models.DefaultBackupConfig(), m.GetBackupConfig(ctx))
}

func TestLoadData_ReturnsCopy(t *testing.T) {
	f := newLoggedIn(t)
	ctx := context.Background()
	f.addGroups(t, "Work")

	doc := f.m.LoadData(ctx)
	doc.NoteGroups[0].Name = "Changed"
	doc.NoteGroups = append(doc.NoteGroups, models.NoteGroup{Name: "Extra"})

	again := f.m.LoadData(ctx)
	require.Len(t, again.NoteGroups, 1)
	assert.Equal(t, "Work", again.NoteGroups[0].Name)
}

func TestSaveData_ReplacesDocument(t *testing.T) {
	f := newLoggedIn(t)
	ctx := context.Background()

	doc := f.m.LoadData(ctx)
	doc.NoteGroups = append(doc.NoteGroups, models.NoteGroup{ID: "g1", Name: "Imported"})
	require.True(t, f.m.SaveData(ctx, doc))

	stored := f.readDisk(t)
	require.Len(t, stored.NoteGroups, 1)
	assert.Equal(t, "Imported", stored.NoteGroups[0].Name)
	assert.NotNil(t, stored.NoteGroups[0].Items)

	assert.False(t, f.m.SaveData(ctx, nil))
	assert.Len(t, f.m.LoadData(ctx).NoteGroups, 1)
}
