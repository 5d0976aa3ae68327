package repository

import (
	"context"

	"apridrive/internal/model"
)

// RecordStore persists form records. Implementations must serialize
// concurrent mutations; a record is written only when complete.
type RecordStore interface {
	Create(ctx context.Context, record *model.Record) error
	FindByID(ctx context.Context, id string) (*model.Record, error)
	FindAll(ctx context.Context) ([]model.Record, error)
	Update(ctx context.Context, record *model.Record) error
	Delete(ctx context.Context, id string) error
}
