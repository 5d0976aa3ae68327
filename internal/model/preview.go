package model

// PreviewDescriptor is the full set of URLs a client needs to render or
// link to an attachment, picked by content class.
type PreviewDescriptor struct {
	RemoteID         string `json:"remoteId"`
	Name             string `json:"name"`
	MimeType         string `json:"mimeType"`
	ContentClass     string `json:"contentClass"`
	ViewURL          string `json:"viewUrl"`
	ContentURL       string `json:"contentUrl"`
	ThumbnailURL     string `json:"thumbnailUrl,omitempty"`
	PreviewURL       string `json:"previewUrl"`
	EmbedURL         string `json:"embedUrl"`
	OfficePreviewURL string `json:"officePreviewUrl"`
	ImageDirectURL   string `json:"imageDirectUrl"`
	PDFEmbedURL      string `json:"pdfEmbedUrl"`
}

// FileURLs are the public links of a remote object.
type FileURLs struct {
	RemoteID   string `json:"remoteId"`
	ViewURL    string `json:"viewUrl"`
	ContentURL string `json:"contentUrl"`
}
