package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"StorePulse/internal/model"
)

// FileStore keeps the daily state in a single indented JSON document so
// operators can inspect and repair it by hand.
type FileStore struct {
	path string
}

// NewFileStore creates the parent directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load reads the persisted record. A missing or malformed file is treated
// as absent: the pacing loop stays available and starts a fresh day rather
// than refusing to run.
func (f *FileStore) Load() (*model.DailyState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read state file %s: %v, starting fresh", f.path, err)
		}
		return &model.DailyState{}, nil
	}
	var state model.DailyState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("[WARN] state file %s is malformed: %v, starting fresh", f.path, err)
		return &model.DailyState{}, nil
	}
	return &state, nil
}

// Save overwrites the whole record.
func (f *FileStore) Save(state *model.DailyState) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
