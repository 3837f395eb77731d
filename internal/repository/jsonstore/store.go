// Package jsonstore implements the repository interfaces on top of a flat-file
// JSON document store: one JSON file per collection, loaded into memory at
// startup and flushed back after every mutation (persist-after-mutate). Each
// repository guards its collection with a single RWMutex so the
// read-modify-persist sequence is atomic from the outside. Stored records are
// never written to after insertion: Update clones the record, applies the
// patch to the clone, and swaps the pointer, so readers holding records from
// an earlier List or Get never observe a concurrent write.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"clubsite/internal/domain"
)

// loadDocument reads the JSON document at path into doc. A missing file is
// not an error: doc is left at its zero value and the file is created on the
// first flush.
func loadDocument(path string, doc any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// saveDocument writes doc to path atomically (temp file + rename) so a crash
// mid-write never leaves a truncated collection behind. Failures wrap
// domain.ErrPersistence; the caller's in-memory state is already mutated and
// is not rolled back.
func saveDocument(path string, doc any) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrPersistence, path, err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", domain.ErrPersistence, dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: temp file for %s: %v", domain.ErrPersistence, path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", domain.ErrPersistence, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", domain.ErrPersistence, path, err)
	}
	return nil
}
