package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"apridrive/internal/apperr"
	"apridrive/internal/model"
	"apridrive/internal/remote"
	"apridrive/internal/stage"
)

type ingestService struct {
	remote remote.Store
	stage  *stage.Stage
	folder string
}

func NewIngestService(remoteStore remote.Store, st *stage.Stage, folder string) IngestService {
	return &ingestService{
		remote: remoteStore,
		stage:  st,
		folder: folder,
	}
}

// Ingest uploads every staged file in the batch. The first failure aborts
// the batch; remote objects uploaded before it are not rolled back, their
// ids travel in the IngestionError so a retry can skip them. Independent
// slots run concurrently; the multi-file slot keeps submission order.
// Whatever happens, no staged file survives the call.
func (s *ingestService) Ingest(ctx context.Context, slots model.Slots) (*model.IngestedSlots, error) {
	defer func() {
		for _, f := range slots.Each() {
			s.stage.Release(f)
		}
	}()

	var (
		mu       sync.Mutex
		uploaded []string
		out      model.IngestedSlots
	)
	done := func(att *model.Attachment) {
		mu.Lock()
		uploaded = append(uploaded, att.RemoteID)
		mu.Unlock()
	}

	// A plain errgroup, deliberately without context cancellation: a failing
	// slot must not cancel a sibling upload already in flight.
	var g errgroup.Group

	if slots.File1 != nil {
		staged := slots.File1
		g.Go(func() error {
			att, err := s.uploadOne(ctx, staged)
			if err != nil {
				return &apperr.IngestionError{Slot: "file1", Cause: err}
			}
			done(att)
			out.File1 = att
			return nil
		})
	}

	if slots.File2 != nil {
		staged := slots.File2
		g.Go(func() error {
			att, err := s.uploadOne(ctx, staged)
			if err != nil {
				return &apperr.IngestionError{Slot: "file2", Cause: err}
			}
			done(att)
			out.File2 = att
			return nil
		})
	}

	if len(slots.MultipleFiles) > 0 {
		g.Go(func() error {
			atts := make([]model.Attachment, 0, len(slots.MultipleFiles))
			for i, staged := range slots.MultipleFiles {
				att, err := s.uploadOne(ctx, staged)
				if err != nil {
					return &apperr.IngestionError{Slot: "multipleFiles", Index: i, Cause: err}
				}
				done(att)
				atts = append(atts, *att)
			}
			out.MultipleFiles = atts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var ingErr *apperr.IngestionError
		if errors.As(err, &ingErr) {
			mu.Lock()
			ingErr.Uploaded = append([]string(nil), uploaded...)
			mu.Unlock()
			return nil, ingErr
		}
		return nil, err
	}

	if out.MultipleFiles == nil {
		out.MultipleFiles = []model.Attachment{}
	}
	return &out, nil
}

func (s *ingestService) uploadOne(ctx context.Context, staged *model.StagedFile) (*model.Attachment, error) {
	log.Printf("uploading %s (%d bytes)", staged.OriginalName, staged.SizeBytes)

	obj, err := s.remote.Upload(ctx, staged, s.folder)
	// the local copy goes away on success and on failure alike
	s.stage.Release(staged)
	if err != nil {
		log.Printf("upload of %s failed: %v", staged.OriginalName, err)
		return nil, err
	}

	return &model.Attachment{
		RemoteID:        obj.ID,
		StoredName:      obj.Name,
		OriginalName:    staged.OriginalName,
		SizeBytes:       obj.SizeBytes,
		MimeType:        obj.MimeType,
		RemoteCreatedAt: obj.CreatedAt,
	}, nil
}
