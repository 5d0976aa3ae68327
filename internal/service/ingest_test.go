package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apridrive/internal/apperr"
	"apridrive/internal/model"
	"apridrive/internal/stage"
)

// fakeRemote is an in-memory remote.Store. Uploads for a configured
// original name fail with failErr; everything else succeeds.
type fakeRemote struct {
	mu      sync.Mutex
	seq     int
	objects map[string]*model.ObjectInfo
	failOn  string
	failErr error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{objects: map[string]*model.ObjectInfo{}}
}

func (f *fakeRemote) Upload(_ context.Context, staged *model.StagedFile, _ string) (*model.RemoteObject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if staged.OriginalName == f.failOn {
		return nil, f.failErr
	}

	f.seq++
	id := fmt.Sprintf("remote-%d", f.seq)
	obj := &model.RemoteObject{
		ID:        id,
		Name:      staged.OriginalName,
		SizeBytes: staged.SizeBytes,
		MimeType:  staged.MimeType,
		CreatedAt: time.Now().UTC(),
	}
	f.objects[id] = &model.ObjectInfo{
		ID:         id,
		Name:       obj.Name,
		SizeBytes:  obj.SizeBytes,
		MimeType:   obj.MimeType,
		CreatedAt:  obj.CreatedAt,
		ViewURL:    "https://view.example/" + id,
		ContentURL: "https://content.example/" + id,
	}
	return obj, nil
}

func (f *fakeRemote) GrantPublicRead(context.Context, string) error { return nil }

func (f *fakeRemote) Stat(_ context.Context, id string) (*model.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	info, ok := f.objects[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return info, nil
}

func (f *fakeRemote) Open(ctx context.Context, id string) (io.ReadCloser, *model.ObjectInfo, error) {
	info, err := f.Stat(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return io.NopCloser(strings.NewReader("content")), info, nil
}

func (f *fakeRemote) Links(id string) model.PreviewLinks {
	return model.PreviewLinks{
		Preview:       "https://preview.example/" + id,
		Embed:         "https://embed.example/" + id,
		PDFEmbed:      "https://pdf.example/" + id,
		ImageDirect:   "https://img.example/" + id,
		OfficePreview: "https://office.example/" + id,
	}
}

func stagedFiles(t *testing.T, st *stage.Stage, field string, names ...string) []*model.StagedFile {
	t.Helper()
	var files []*model.StagedFile
	for _, name := range names {
		f, err := st.Save(field, name, "text/plain", strings.NewReader("data for "+name))
		require.NoError(t, err)
		files = append(files, f)
	}
	return files
}

func stageDirEmpty(t *testing.T, st *stage.Stage) {
	t.Helper()
	entries, err := os.ReadDir(st.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "staged files left behind")
}

func TestIngestAllSlots(t *testing.T) {
	st, err := stage.New(t.TempDir())
	require.NoError(t, err)
	fake := newFakeRemote()
	svc := NewIngestService(fake, st, "folder")

	slots := model.Slots{
		File1:         stagedFiles(t, st, "file1", "one.txt")[0],
		File2:         stagedFiles(t, st, "file2", "two.txt")[0],
		MultipleFiles: stagedFiles(t, st, "multipleFiles", "m0.txt", "m1.txt", "m2.txt"),
	}

	out, err := svc.Ingest(context.Background(), slots)
	require.NoError(t, err)

	require.NotNil(t, out.File1)
	assert.Equal(t, "one.txt", out.File1.OriginalName)
	require.NotNil(t, out.File2)
	assert.Equal(t, "two.txt", out.File2.OriginalName)

	// multi-slot results keep submission order
	require.Len(t, out.MultipleFiles, 3)
	assert.Equal(t, "m0.txt", out.MultipleFiles[0].OriginalName)
	assert.Equal(t, "m1.txt", out.MultipleFiles[1].OriginalName)
	assert.Equal(t, "m2.txt", out.MultipleFiles[2].OriginalName)

	stageDirEmpty(t, st)
}

func TestIngestEmptySlots(t *testing.T) {
	st, err := stage.New(t.TempDir())
	require.NoError(t, err)
	svc := NewIngestService(newFakeRemote(), st, "folder")

	out, err := svc.Ingest(context.Background(), model.Slots{})
	require.NoError(t, err)
	assert.Nil(t, out.File1)
	assert.Nil(t, out.File2)
	assert.NotNil(t, out.MultipleFiles)
	assert.Empty(t, out.MultipleFiles)
}

func TestIngestAbortsOnFailure(t *testing.T) {
	st, err := stage.New(t.TempDir())
	require.NoError(t, err)
	fake := newFakeRemote()
	fake.failOn = "m1.txt"
	fake.failErr = apperr.ErrConnectivity
	svc := NewIngestService(fake, st, "folder")

	slots := model.Slots{
		MultipleFiles: stagedFiles(t, st, "multipleFiles", "m0.txt", "m1.txt", "m2.txt"),
	}

	_, err = svc.Ingest(context.Background(), slots)
	var ingErr *apperr.IngestionError
	require.ErrorAs(t, err, &ingErr)
	assert.Equal(t, "multipleFiles", ingErr.Slot)
	assert.Equal(t, 1, ingErr.Index)
	assert.ErrorIs(t, ingErr, apperr.ErrConnectivity)

	// the first file landed remotely and is reported for retries
	assert.Equal(t, []string{"remote-1"}, ingErr.Uploaded)

	// the third file was never uploaded
	f := fake
	f.mu.Lock()
	assert.Len(t, f.objects, 1)
	f.mu.Unlock()

	// no local leakage, including the never-uploaded third file
	stageDirEmpty(t, st)
}

func TestIngestReleasesOnPermissionGrantFailure(t *testing.T) {
	st, err := stage.New(t.TempDir())
	require.NoError(t, err)
	fake := newFakeRemote()
	fake.failOn = "one.txt"
	fake.failErr = fmt.Errorf("%w: object x", apperr.ErrPermissionGrantFailed)
	svc := NewIngestService(fake, st, "folder")

	slots := model.Slots{File1: stagedFiles(t, st, "file1", "one.txt")[0]}

	_, err = svc.Ingest(context.Background(), slots)
	var ingErr *apperr.IngestionError
	require.ErrorAs(t, err, &ingErr)
	assert.Equal(t, "file1", ingErr.Slot)
	assert.ErrorIs(t, ingErr, apperr.ErrPermissionGrantFailed)

	stageDirEmpty(t, st)
}
