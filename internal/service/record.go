package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"apridrive/internal/apperr"
	"apridrive/internal/model"
	"apridrive/internal/repository"
)

// Fields carries the two text inputs of a record. On update an empty
// value means "keep the stored one".
type Fields struct {
	TextField1 string
	TextField2 string
}

type recordService struct {
	store  repository.RecordStore
	ingest IngestService
}

func NewRecordService(store repository.RecordStore, ingest IngestService) RecordService {
	return &recordService{
		store:  store,
		ingest: ingest,
	}
}

// Create validates the text fields, ingests every staged slot and only then
// writes the record. A failed ingestion leaves the store untouched.
func (s *recordService) Create(ctx context.Context, fields Fields, slots model.Slots) (*model.Record, error) {
	var missing []string
	if strings.TrimSpace(fields.TextField1) == "" {
		missing = append(missing, "textField1")
	}
	if strings.TrimSpace(fields.TextField2) == "" {
		missing = append(missing, "textField2")
	}
	if len(missing) > 0 {
		return nil, &apperr.ValidationError{Missing: missing}
	}

	ingested, err := s.ingest.Ingest(ctx, slots)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &model.Record{
		ID:            uuid.New().String(),
		TextField1:    fields.TextField1,
		TextField2:    fields.TextField2,
		File1:         ingested.File1,
		File2:         ingested.File2,
		MultipleFiles: ingested.MultipleFiles,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("record created: %s", record.ID)
	return record, nil
}

func (s *recordService) GetByID(ctx context.Context, id string) (*model.Record, error) {
	return s.store.FindByID(ctx, id)
}

func (s *recordService) List(ctx context.Context) ([]model.Record, error) {
	return s.store.FindAll(ctx)
}

// Update applies a partial update: text fields only when provided, each
// attachment slot only when a new file came in. A replaced slot drops the
// old attachment reference; the old remote object stays (orphaned, not
// deleted).
func (s *recordService) Update(ctx context.Context, id string, fields Fields, slots model.Slots) (*model.Record, error) {
	record, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var ingested *model.IngestedSlots
	if len(slots.Each()) > 0 {
		ingested, err = s.ingest.Ingest(ctx, slots)
		if err != nil {
			return nil, err
		}
	}

	if fields.TextField1 != "" {
		record.TextField1 = fields.TextField1
	}
	if fields.TextField2 != "" {
		record.TextField2 = fields.TextField2
	}

	if ingested != nil {
		if ingested.File1 != nil {
			record.File1 = ingested.File1
		}
		if ingested.File2 != nil {
			record.File2 = ingested.File2
		}
		if len(slots.MultipleFiles) > 0 {
			record.MultipleFiles = ingested.MultipleFiles
		}
	}

	record.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes the record. Remote objects referenced by its attachments
// are left in place: records reference remote storage but do not own its
// lifecycle.
func (s *recordService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("record deleted: %s", id)
	return nil
}
