package service

import (
	"context"
	"io"

	"apridrive/internal/model"
)

// IngestService drives a batch of staged files through remote upload and
// local cleanup, producing the attachment metadata to merge into a record.
type IngestService interface {
	Ingest(ctx context.Context, slots model.Slots) (*model.IngestedSlots, error)
}

// RecordService is the CRUD surface over form records.
type RecordService interface {
	Create(ctx context.Context, fields Fields, slots model.Slots) (*model.Record, error)
	GetByID(ctx context.Context, id string) (*model.Record, error)
	List(ctx context.Context) ([]model.Record, error)
	Update(ctx context.Context, id string, fields Fields, slots model.Slots) (*model.Record, error)
	Delete(ctx context.Context, id string) error
}

// FileService resolves previews, links and content for remote attachments.
type FileService interface {
	Preview(ctx context.Context, remoteID string) (*model.PreviewDescriptor, error)
	PublicURL(ctx context.Context, remoteID string) (*model.FileURLs, error)
	Info(ctx context.Context, remoteID string) (*model.ObjectInfo, error)
	Download(ctx context.Context, remoteID string) (io.ReadCloser, *model.ObjectInfo, error)
}
