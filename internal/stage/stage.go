package stage

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"apridrive/internal/apperr"
	"apridrive/internal/model"
)

// MaxFileSize is the per-file staging limit.
const MaxFileSize = 100 << 20 // 100 MiB

// Stage is the ephemeral on-disk holding area for uploads between receipt
// and remote-upload completion.
type Stage struct {
	dir     string
	maxSize int64
}

func New(dir string) (*Stage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrIO, err)
	}
	return &Stage{dir: dir, maxSize: MaxFileSize}, nil
}

// Dir returns the staging directory.
func (s *Stage) Dir() string {
	return s.dir
}

// Save buffers one multipart part to local disk. It enforces the
// mime-or-extension allow-list and the per-file size cap before accepting.
func (s *Stage) Save(field, originalName, declaredMime string, r io.Reader) (*model.StagedFile, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !Allowed(declaredMime, ext) {
		return nil, &apperr.MediaTypeError{MimeType: declaredMime, Extension: ext}
	}

	// The suffix keeps names collision-free across concurrent requests.
	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Int63n(1e9), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrIO, err)
	}

	written, err := io.Copy(f, io.LimitReader(r, s.maxSize+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%w: %v", apperr.ErrIO, err)
	}
	if written > s.maxSize {
		os.Remove(path)
		return nil, fmt.Errorf("%w: %s", apperr.ErrFileTooLarge, originalName)
	}

	return &model.StagedFile{
		LocalPath:    path,
		OriginalName: originalName,
		MimeType:     declaredMime,
		SizeBytes:    written,
	}, nil
}

// Release deletes a staged file. Idempotent; a missing file is not an error.
func (s *Stage) Release(staged *model.StagedFile) {
	if staged == nil || staged.LocalPath == "" {
		return
	}
	if err := os.Remove(staged.LocalPath); err != nil && !os.IsNotExist(err) {
		log.Printf("stage: failed to remove %s: %v", staged.LocalPath, err)
	}
}
