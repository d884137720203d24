package snapshot

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// FileStore keeps the snapshot in a small CSV file with a sku,stock
// header. Writes go to a temp file in the same directory which is
// then renamed over the target, so a crash mid-write never leaves a
// half-written snapshot behind.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given CSV path. The file
// does not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot file. A missing file means no previous run
// and yields an empty map.
func (s *FileStore) Load(_ context.Context) (map[string]int, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	if len(records) == 0 || len(records[0]) != 2 || records[0][0] != "sku" || records[0][1] != "stock" {
		return nil, &StorageError{Op: "load", Path: s.path, Err: fmt.Errorf("missing sku,stock header")}
	}

	snap := make(map[string]int, len(records)-1)
	for _, rec := range records[1:] {
		stock, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, &StorageError{Op: "load", Path: s.path, Err: fmt.Errorf("bad stock value for %s: %w", rec[0], err)}
		}
		snap[rec[0]] = stock
	}
	return snap, nil
}

// Save writes the snapshot to a temp file and renames it into place.
func (s *FileStore) Save(_ context.Context, snap map[string]int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if err := writeSnapshot(tmp, snap); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Close is a no-op for file-backed stores.
func (s *FileStore) Close() error { return nil }

func writeSnapshot(w io.Writer, snap map[string]int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sku", "stock"}); err != nil {
		return err
	}

	skus := make([]string, 0, len(snap))
	for sku := range snap {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	for _, sku := range skus {
		if err := cw.Write([]string{sku, strconv.Itoa(snap[sku])}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
