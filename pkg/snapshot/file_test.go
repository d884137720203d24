package snapshot_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkadlec/stockwatch/pkg/snapshot"
)

func TestFileStore_LoadAbsentFile(t *testing.T) {
	store := snapshot.NewFileStore(filepath.Join(t.TempDir(), "prev.csv"))

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	store := snapshot.NewFileStore(filepath.Join(t.TempDir(), "prev.csv"))
	ctx := context.Background()

	want := map[string]int{"AB-101": 14, "CD-202": 0, "EF-303": 250}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStore_SaveReplacesPrevious(t *testing.T) {
	store := snapshot.NewFileStore(filepath.Join(t.TempDir(), "prev.csv"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, map[string]int{"OLD": 1, "KEEP": 2}))
	require.NoError(t, store.Save(ctx, map[string]int{"KEEP": 3}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"KEEP": 3}, got)
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewFileStore(filepath.Join(dir, "prev.csv"))

	require.NoError(t, store.Save(context.Background(), map[string]int{"A": 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prev.csv", entries[0].Name())
}

func TestFileStore_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "nested", "prev.csv")
	store := snapshot.NewFileStore(path)

	require.NoError(t, store.Save(context.Background(), map[string]int{"A": 1}))
	assert.FileExists(t, path)
}

func TestFileStore_SaveEmptySnapshot(t *testing.T) {
	store := snapshot.NewFileStore(filepath.Join(t.TempDir(), "prev.csv"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, map[string]int{}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_LoadRejectsBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prev.csv")
	require.NoError(t, os.WriteFile(path, []byte("item,count\nA,1\n"), 0o644))

	_, err := snapshot.NewFileStore(path).Load(context.Background())
	require.Error(t, err)

	var storageErr *snapshot.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "load", storageErr.Op)
}

func TestFileStore_LoadRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prev.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := snapshot.NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileStore_LoadRejectsNonNumericStock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prev.csv")
	require.NoError(t, os.WriteFile(path, []byte("sku,stock\nA,plenty\n"), 0o644))

	_, err := snapshot.NewFileStore(path).Load(context.Background())
	require.Error(t, err)

	var storageErr *snapshot.StorageError
	assert.True(t, errors.As(err, &storageErr))
}

func TestFileStore_OutputIsSortedBySKU(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prev.csv")
	store := snapshot.NewFileStore(path)

	require.NoError(t, store.Save(context.Background(), map[string]int{"Z": 1, "A": 2, "M": 3}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sku,stock\nA,2\nM,3\nZ,1\n", string(data))
}
