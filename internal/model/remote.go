package model

import "time"

// RemoteObject is the canonical metadata remote storage returns for a
// freshly created object.
type RemoteObject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SizeBytes int64     `json:"sizeBytes"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

// ObjectInfo is the metadata fetched for an existing remote object,
// including the backend-served links.
type ObjectInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SizeBytes    int64     `json:"sizeBytes"`
	MimeType     string    `json:"mimeType"`
	CreatedAt    time.Time `json:"createdAt"`
	ViewURL      string    `json:"viewUrl"`
	ContentURL   string    `json:"contentUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
}

// PreviewLinks are the URL patterns a backend derives from an object id
// without any network round-trip.
type PreviewLinks struct {
	Preview       string
	Embed         string
	PDFEmbed      string
	ImageDirect   string
	OfficePreview string
}
