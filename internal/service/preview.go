package service

import (
	"context"
	"io"
	"log"
	"strings"

	"apridrive/internal/model"
	"apridrive/internal/remote"
	"apridrive/internal/repository"
)

// Content classes drive which preview URL a client renders.
const (
	ClassPDF    = "pdf"
	ClassImage  = "image"
	ClassOffice = "office"
	ClassVideo  = "video"
	ClassText   = "text"
	ClassOther  = "other"
)

// officeMarkers are matched in order; "document" stays last so it cannot
// shadow the more specific checks.
var officeMarkers = []string{
	"officedocument",
	"ms-powerpoint",
	"ms-excel",
	"msword",
	"presentation",
	"spreadsheet",
	"document",
}

// ClassifyMimeType picks the content class for a mime type. The pdf and
// image checks run before the office substring scan, so application/pdf
// never falls into the office path.
func ClassifyMimeType(mimeType string) string {
	if mimeType == "application/pdf" {
		return ClassPDF
	}
	if strings.HasPrefix(mimeType, "image/") {
		return ClassImage
	}
	for _, marker := range officeMarkers {
		if strings.Contains(mimeType, marker) {
			return ClassOffice
		}
	}
	if strings.HasPrefix(mimeType, "video/") {
		return ClassVideo
	}
	if strings.HasPrefix(mimeType, "text/") {
		return ClassText
	}
	return ClassOther
}

type fileService struct {
	remote remote.Store
	cache  repository.PreviewCacheRepository // optional, may be nil
}

func NewFileService(remoteStore remote.Store, cache repository.PreviewCacheRepository) FileService {
	return &fileService{
		remote: remoteStore,
		cache:  cache,
	}
}

// Preview resolves the full preview descriptor for a remote object: one
// metadata fetch, everything else templated from the id.
func (s *fileService) Preview(ctx context.Context, remoteID string) (*model.PreviewDescriptor, error) {
	if s.cache != nil {
		if desc, err := s.cache.Get(ctx, remoteID); err == nil {
			return desc, nil
		}
	}

	info, err := s.remote.Stat(ctx, remoteID)
	if err != nil {
		return nil, err
	}
	links := s.remote.Links(remoteID)

	desc := &model.PreviewDescriptor{
		RemoteID:         remoteID,
		Name:             info.Name,
		MimeType:         info.MimeType,
		ContentClass:     ClassifyMimeType(info.MimeType),
		ViewURL:          info.ViewURL,
		ContentURL:       info.ContentURL,
		ThumbnailURL:     info.ThumbnailURL,
		PreviewURL:       links.Preview,
		EmbedURL:         links.Embed,
		OfficePreviewURL: links.OfficePreview,
		ImageDirectURL:   links.ImageDirect,
		PDFEmbedURL:      links.PDFEmbed,
	}

	if s.cache != nil {
		if err := s.cache.Save(ctx, desc); err != nil {
			log.Printf("preview cache save failed for %s: %v", remoteID, err)
		}
	}
	return desc, nil
}

func (s *fileService) PublicURL(ctx context.Context, remoteID string) (*model.FileURLs, error) {
	info, err := s.remote.Stat(ctx, remoteID)
	if err != nil {
		return nil, err
	}
	return &model.FileURLs{
		RemoteID:   remoteID,
		ViewURL:    info.ViewURL,
		ContentURL: info.ContentURL,
	}, nil
}

func (s *fileService) Info(ctx context.Context, remoteID string) (*model.ObjectInfo, error) {
	return s.remote.Stat(ctx, remoteID)
}

func (s *fileService) Download(ctx context.Context, remoteID string) (io.ReadCloser, *model.ObjectInfo, error) {
	return s.remote.Open(ctx, remoteID)
}
