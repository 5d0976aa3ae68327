package remote

import (
	"context"
	"io"
	"time"

	"apridrive/internal/model"
)

// UploadTimeout bounds every create-object call against the backend.
const UploadTimeout = 5 * time.Minute

// Store is the narrow surface of the remote object-storage backend. Upload
// performs both the create call and the public-read grant; a grant failure
// after a successful create surfaces apperr.ErrPermissionGrantFailed so the
// caller can tell the partial state apart from an upload failure.
//
// No call is retried here; retry policy belongs to the caller.
type Store interface {
	Upload(ctx context.Context, staged *model.StagedFile, folder string) (*model.RemoteObject, error)
	GrantPublicRead(ctx context.Context, id string) error
	Stat(ctx context.Context, id string) (*model.ObjectInfo, error)
	Open(ctx context.Context, id string) (io.ReadCloser, *model.ObjectInfo, error)
	Links(id string) model.PreviewLinks
}
