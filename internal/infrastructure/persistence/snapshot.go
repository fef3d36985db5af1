package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvmock/backend/internal/domain/records"
)

// SnapshotFile persists the full store state as a single JSON document.
// Saves rewrite the whole file through a temp-file-then-rename so a crash
// mid-write never leaves a truncated snapshot behind.
type SnapshotFile struct {
	path string
}

// NewSnapshotFile creates a snapshot repository backed by the given path.
func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{path: path}
}

// Path returns the backing file path.
func (f *SnapshotFile) Path() string {
	return f.path
}

// Load reads the persisted state. Returns (nil, nil) when the snapshot file
// does not exist yet.
func (f *SnapshotFile) Load() (*records.State, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, persistenceError("read snapshot", err)
	}
	state := &records.State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, persistenceError("decode snapshot", err)
	}
	state.Normalize()
	return state, nil
}

// Save atomically rewrites the persisted state.
func (f *SnapshotFile) Save(state *records.State) error {
	data, err := json.MarshalIndent(state, "", "    ")
	if err != nil {
		return persistenceError("encode snapshot", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return persistenceError("create temp snapshot", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return persistenceError("write snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return persistenceError("close snapshot", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return persistenceError("replace snapshot", err)
	}
	return nil
}

func persistenceError(op string, err error) *records.DomainError {
	return records.NewDomainError(records.ErrPersistenceFailure.Code, fmt.Sprintf("%s: %v", op, err))
}
