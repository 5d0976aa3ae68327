package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"apridrive/internal/model"
)

const previewCacheTTL = 10 * time.Minute

// PreviewCacheRepository caches resolved preview descriptors so repeated
// renders of the same attachment skip the backend metadata fetch.
type PreviewCacheRepository interface {
	Get(ctx context.Context, remoteID string) (*model.PreviewDescriptor, error)
	Save(ctx context.Context, desc *model.PreviewDescriptor) error
	Invalidate(ctx context.Context, remoteID string) error
}

type previewCacheRepository struct {
	rdb *redis.Client
}

func NewPreviewCacheRepository(rdb *redis.Client) PreviewCacheRepository {
	return &previewCacheRepository{rdb: rdb}
}

func (r *previewCacheRepository) key(remoteID string) string {
	return fmt.Sprintf("preview:%s", remoteID)
}

func (r *previewCacheRepository) Get(ctx context.Context, remoteID string) (*model.PreviewDescriptor, error) {
	data, err := r.rdb.Get(ctx, r.key(remoteID)).Bytes()
	if err != nil {
		return nil, err
	}

	var desc model.PreviewDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

func (r *previewCacheRepository) Save(ctx context.Context, desc *model.PreviewDescriptor) error {
	data, err := json.Marshal(desc)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key(desc.RemoteID), data, previewCacheTTL).Err()
}

func (r *previewCacheRepository) Invalidate(ctx context.Context, remoteID string) error {
	return r.rdb.Del(ctx, r.key(remoteID)).Err()
}
