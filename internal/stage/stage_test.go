package stage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apridrive/internal/apperr"
)

func newTestStage(t *testing.T) *Stage {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSaveAndRelease(t *testing.T) {
	s := newTestStage(t)

	staged, err := s.Save("file1", "photo.png", "image/png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "photo.png", staged.OriginalName)
	assert.Equal(t, "image/png", staged.MimeType)
	assert.Equal(t, int64(len("fake png bytes")), staged.SizeBytes)

	_, err = os.Stat(staged.LocalPath)
	require.NoError(t, err)

	s.Release(staged)
	_, err = os.Stat(staged.LocalPath)
	assert.True(t, os.IsNotExist(err))

	// releasing again must be a no-op
	s.Release(staged)
}

func TestAllowListOrPolicy(t *testing.T) {
	s := newTestStage(t)

	// allowed extension, disallowed mime: accepted
	staged, err := s.Save("file1", "report.pdf", "application/octet-stream", strings.NewReader("x"))
	require.NoError(t, err)
	s.Release(staged)

	// allowed mime, disallowed extension: accepted
	staged, err = s.Save("file1", "photo.unknown", "image/png", strings.NewReader("x"))
	require.NoError(t, err)
	s.Release(staged)

	// neither allowed: rejected with the mime and extension in the error
	_, err = s.Save("file1", "virus.exe", "application/x-msdownload", strings.NewReader("x"))
	var mtErr *apperr.MediaTypeError
	require.True(t, errors.As(err, &mtErr))
	assert.Equal(t, "application/x-msdownload", mtErr.MimeType)
	assert.Equal(t, ".exe", mtErr.Extension)
}

func TestSizeCap(t *testing.T) {
	s := newTestStage(t)
	s.maxSize = 16

	_, err := s.Save("file2", "big.txt", "text/plain", strings.NewReader(strings.Repeat("a", 17)))
	assert.ErrorIs(t, err, apperr.ErrFileTooLarge)

	// nothing may be left behind after a rejected upload
	entries, readErr := os.ReadDir(s.dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)

	staged, err := s.Save("file2", "ok.txt", "text/plain", strings.NewReader(strings.Repeat("a", 16)))
	require.NoError(t, err)
	s.Release(staged)
}

func TestUniqueNames(t *testing.T) {
	s := newTestStage(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		staged, err := s.Save("multipleFiles", "same.txt", "text/plain", strings.NewReader("x"))
		require.NoError(t, err)
		name := filepath.Base(staged.LocalPath)
		assert.False(t, seen[name], "staged name %s repeated", name)
		seen[name] = true
	}
}
