package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"apridrive/internal/apperr"
	"apridrive/internal/model"
)

// DriveStore talks to Google Drive v3. Objects are created inside a
// configured parent folder and made public with a reader/anyone permission.
type DriveStore struct {
	srv *drive.Service
}

func NewDriveStore(ctx context.Context, clientID, clientSecret, refreshToken string) (*DriveStore, error) {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
	}
	client := conf.Client(ctx, &oauth2.Token{RefreshToken: refreshToken})

	srv, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveStore{srv: srv}, nil
}

func (d *DriveStore) Upload(ctx context.Context, staged *model.StagedFile, folder string) (*model.RemoteObject, error) {
	f, err := os.Open(staged.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrIO, err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	meta := &drive.File{
		Name:    staged.OriginalName,
		Parents: []string{folder},
	}
	res, err := d.srv.Files.Create(meta).
		Media(f, googleapi.ContentType(staged.MimeType)).
		Fields("id, name, size, mimeType, createdTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyDrive(err)
	}

	if err := d.GrantPublicRead(ctx, res.Id); err != nil {
		// The object exists remotely but is not publicly readable.
		return nil, fmt.Errorf("%w: object %s: %v", apperr.ErrPermissionGrantFailed, res.Id, err)
	}

	created, _ := time.Parse(time.RFC3339, res.CreatedTime)
	return &model.RemoteObject{
		ID:        res.Id,
		Name:      res.Name,
		SizeBytes: res.Size,
		MimeType:  res.MimeType,
		CreatedAt: created,
	}, nil
}

func (d *DriveStore) GrantPublicRead(ctx context.Context, id string) error {
	_, err := d.srv.Permissions.Create(id, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).Context(ctx).Do()
	if err != nil {
		return classifyDrive(err)
	}
	return nil
}

func (d *DriveStore) Stat(ctx context.Context, id string) (*model.ObjectInfo, error) {
	res, err := d.srv.Files.Get(id).
		Fields("id, name, size, mimeType, createdTime, webViewLink, webContentLink, thumbnailLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyDrive(err)
	}

	created, _ := time.Parse(time.RFC3339, res.CreatedTime)
	return &model.ObjectInfo{
		ID:           res.Id,
		Name:         res.Name,
		SizeBytes:    res.Size,
		MimeType:     res.MimeType,
		CreatedAt:    created,
		ViewURL:      res.WebViewLink,
		ContentURL:   res.WebContentLink,
		ThumbnailURL: res.ThumbnailLink,
	}, nil
}

func (d *DriveStore) Open(ctx context.Context, id string) (io.ReadCloser, *model.ObjectInfo, error) {
	info, err := d.Stat(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	res, err := d.srv.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, nil, classifyDrive(err)
	}
	return res.Body, info, nil
}

func (d *DriveStore) Links(id string) model.PreviewLinks {
	return model.PreviewLinks{
		Preview:       fmt.Sprintf("https://drive.google.com/file/d/%s/preview", id),
		Embed:         fmt.Sprintf("https://drive.google.com/file/d/%s/view?usp=sharing", id),
		PDFEmbed:      fmt.Sprintf("https://drive.google.com/file/d/%s/preview?usp=sharing", id),
		ImageDirect:   fmt.Sprintf("https://drive.google.com/uc?id=%s", id),
		OfficePreview: fmt.Sprintf("https://docs.google.com/viewer?url=https://drive.google.com/uc?id=%s&embedded=true", id),
	}
}

// classifyDrive maps Drive API failures to the domain error taxonomy.
func classifyDrive(err error) error {
	if err == nil {
		return nil
	}
	if mapped := classifyTransport(err); mapped != nil {
		return mapped
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if mapped := classifyStatus(apiErr.Code, err); mapped != nil {
			return mapped
		}
	}
	return fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
}
