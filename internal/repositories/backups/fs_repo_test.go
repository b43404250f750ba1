package backups

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) *FileRepository {
	t.Helper()
	return NewFileRepository(filepath.Join(t.TempDir(), "backups"))
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600))
}

func TestTimestamp_NormalizedToUTC8(t *testing.T) {
	assert.Equal(t, "2024-05-01T18-00-00", Timestamp(base))

	ny := time.FixedZone("EST", -5*3600)
	sameInstant := base.In(ny)
	assert.Equal(t, "2024-05-01T18-00-00", Timestamp(sameInstant), "host zone must not matter")

	// crosses midnight in UTC+8
	late := time.Date(2024, 12, 31, 20, 30, 5, 0, time.UTC)
	assert.Equal(t, "2025-01-01T04-30-05", Timestamp(late))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "backup-2024-05-01T18-00-00.json", FileName(PrefixAuto, base))
	assert.Equal(t, "manual-2024-05-01T18-00-00.json", FileName(PrefixManual, base))
}

func TestWriteRead_RoundTrip(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	doc := models.NewDataStore("admin", "pw")
	doc.NoteGroups = []models.NoteGroup{{ID: "g", Name: "Work", Items: []models.NoteItem{}}}

	path, err := r.Write(ctx, PrefixAuto, base, doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(r.Dir(), "backup-2024-05-01T18-00-00.json"), path)

	got, err := r.Read(ctx, filepath.Base(path))
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestWrite_SameSecondOverwrites(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	_, err := r.Write(ctx, PrefixAuto, base, models.NewDataStore("a", "1"))
	require.NoError(t, err)
	_, err = r.Write(ctx, PrefixAuto, base.Add(400*time.Millisecond), models.NewDataStore("a", "2"))
	require.NoError(t, err)

	names, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 1)
}

func TestPrune_KeepsNewestOfPrefixOnly(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		touch(t, r.Dir(), FileName(PrefixAuto, base.Add(time.Duration(i)*time.Second)))
	}
	touch(t, r.Dir(), FileName(PrefixManual, base.Add(-time.Hour)))
	touch(t, r.Dir(), "notes.txt")

	removed, err := r.Prune(ctx, PrefixAuto, 2)
	require.NoError(t, err)
	assert.Len(t, removed, 3)

	names, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"backup-2024-05-01T18-00-04.json",
		"backup-2024-05-01T18-00-03.json",
		"manual-2024-05-01T17-00-00.json",
	}, names)

	_, err = os.Stat(filepath.Join(r.Dir(), "notes.txt"))
	require.NoError(t, err, "non-json files are untouched")
}

func TestPrune_ZeroOrNegativeKeepsNothing(t *testing.T) {
	for _, keep := range []int{0, -3} {
		r := newRepo(t)
		touch(t, r.Dir(), FileName(PrefixAuto, base))
		touch(t, r.Dir(), FileName(PrefixAuto, base.Add(time.Second)))

		removed, err := r.Prune(context.Background(), PrefixAuto, keep)
		require.NoError(t, err)
		assert.Len(t, removed, 2)
	}
}

func TestPrune_UnderLimitIsNoop(t *testing.T) {
	r := newRepo(t)
	touch(t, r.Dir(), FileName(PrefixAuto, base))

	removed, err := r.Prune(context.Background(), PrefixAuto, 10)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestList_NewestFirstAcrossPrefixes(t *testing.T) {
	r := newRepo(t)
	touch(t, r.Dir(), FileName(PrefixAuto, base))
	touch(t, r.Dir(), FileName(PrefixManual, base.Add(time.Minute)))
	touch(t, r.Dir(), FileName(PrefixAuto, base.Add(2*time.Minute)))

	names, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"backup-2024-05-01T18-02-00.json",
		"manual-2024-05-01T18-01-00.json",
		"backup-2024-05-01T18-00-00.json",
	}, names)
}

func TestList_MissingDirectory(t *testing.T) {
	r := newRepo(t)
	_, err := r.List(context.Background())
	require.Error(t, err)
}

func TestRead_RejectsPathTraversal(t *testing.T) {
	r := newRepo(t)
	for _, name := range []string{"", ".", "..", "../data.json", "sub/backup.json", `..\data.json`} {
		_, err := r.Read(context.Background(), name)
		require.ErrorIs(t, err, common.ErrInvalidBackupName, name)
	}
}

func TestRead_Missing(t *testing.T) {
	r := newRepo(t)
	_, err := r.Read(context.Background(), "backup-2000-01-01T00-00-00.json")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
