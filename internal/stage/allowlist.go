package stage

// Allow-lists for incoming uploads. A file is accepted when either its
// declared mime type or its extension matches (OR, not AND), so a browser
// sending application/octet-stream for a known extension still gets through.

var allowedMimeTypes = map[string]struct{}{
	// images
	"image/jpeg":    {},
	"image/jpg":     {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/bmp":     {},
	"image/tiff":    {},
	"image/svg+xml": {},

	// documents
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {},
	"application/vnd.ms-powerpoint": {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},

	// video
	"video/mp4":        {},
	"video/avi":        {},
	"video/quicktime":  {},
	"video/x-msvideo":  {},
	"video/webm":       {},
	"video/mkv":        {},
	"video/x-matroska": {},
	"video/mov":        {},
	"video/wmv":        {},
	"video/flv":        {},
	"video/3gpp":       {},
	"video/x-ms-wmv":   {},

	// audio
	"audio/mpeg": {},
	"audio/wav":  {},
	"audio/mp3":  {},
	"audio/ogg":  {},
	"audio/aac":  {},
	"audio/m4a":  {},

	// text
	"text/plain": {},
	"text/csv":   {},
	"text/html":  {},
	"text/xml":   {},

	// archives
	"application/zip":              {},
	"application/x-rar-compressed": {},
	"application/x-7z-compressed":  {},
	"application/gzip":             {},
}

var allowedExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".bmp": {}, ".tiff": {}, ".svg": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {},
	".mp4": {}, ".avi": {}, ".mov": {}, ".wmv": {}, ".flv": {}, ".mkv": {}, ".webm": {}, ".3gp": {},
	".mp3": {}, ".wav": {}, ".ogg": {}, ".aac": {}, ".m4a": {},
	".txt": {}, ".csv": {}, ".html": {}, ".xml": {},
	".zip": {}, ".rar": {}, ".7z": {}, ".gz": {},
}

// Allowed reports whether a file with the given declared mime type and
// extension may be staged.
func Allowed(mimeType, extension string) bool {
	if _, ok := allowedMimeTypes[mimeType]; ok {
		return true
	}
	_, ok := allowedExtensions[extension]
	return ok
}
