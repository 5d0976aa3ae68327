package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"apridrive/internal/apperr"
	"apridrive/internal/model"
)

// jsonFileStore keeps all records in a single JSON array on disk, rewritten
// wholesale on every mutation. A single-writer mutex serializes mutations
// and writes go through a temp file plus rename so a crash cannot truncate
// the dataset.
type jsonFileStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileStore(path string) (RecordStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &jsonFileStore{path: path}, nil
}

func (s *jsonFileStore) readAll() ([]model.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	return records, nil
}

func (s *jsonFileStore) writeAll(records []model.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

func (s *jsonFileStore) Create(_ context.Context, record *model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}
	records = append(records, *record)
	return s.writeAll(records)
}

func (s *jsonFileStore) FindByID(_ context.Context, id string) (*model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (s *jsonFileStore) FindAll(_ context.Context) ([]model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readAll()
}

func (s *jsonFileStore) Update(_ context.Context, record *model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == record.ID {
			records[i] = *record
			return s.writeAll(records)
		}
	}
	return apperr.ErrNotFound
}

func (s *jsonFileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == id {
			records = append(records[:i], records[i+1:]...)
			return s.writeAll(records)
		}
	}
	return apperr.ErrNotFound
}
