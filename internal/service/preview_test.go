package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apridrive/internal/apperr"
	"apridrive/internal/model"
	"apridrive/internal/stage"
)

func TestClassifyMimeType(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		// pdf wins before the office "document" substring can match
		{"application/pdf", ClassPDF},
		{"image/png", ClassImage},
		{"image/svg+xml", ClassImage},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", ClassOffice},
		{"application/vnd.ms-powerpoint", ClassOffice},
		{"application/vnd.ms-excel", ClassOffice},
		{"application/msword", ClassOffice},
		{"video/mp4", ClassVideo},
		{"text/plain", ClassText},
		{"application/zip", ClassOther},
		{"audio/mpeg", ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMimeType(tt.mimeType))
		})
	}
}

func TestPreviewResolve(t *testing.T) {
	st, err := stage.New(t.TempDir())
	require.NoError(t, err)
	fake := newFakeRemote()

	staged, err := st.Save("file1", "doc.pdf", "application/pdf", strings.NewReader("%PDF-"))
	require.NoError(t, err)
	obj, err := fake.Upload(context.Background(), staged, "folder")
	require.NoError(t, err)
	st.Release(staged)

	svc := NewFileService(fake, nil)

	desc, err := svc.Preview(context.Background(), obj.ID)
	require.NoError(t, err)
	assert.Equal(t, obj.ID, desc.RemoteID)
	assert.Equal(t, "doc.pdf", desc.Name)
	assert.Equal(t, ClassPDF, desc.ContentClass)
	assert.Equal(t, "https://view.example/"+obj.ID, desc.ViewURL)
	assert.Equal(t, "https://preview.example/"+obj.ID, desc.PreviewURL)
	assert.Equal(t, "https://img.example/"+obj.ID, desc.ImageDirectURL)
}

func TestPreviewUnknownObject(t *testing.T) {
	svc := NewFileService(newFakeRemote(), nil)

	_, err := svc.Preview(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.PublicURL(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDownload(t *testing.T) {
	fake := newFakeRemote()
	fake.objects["obj-1"] = &model.ObjectInfo{
		ID:       "obj-1",
		Name:     "clip.mp4",
		MimeType: "video/mp4",
	}
	svc := NewFileService(fake, nil)

	body, info, err := svc.Download(context.Background(), "obj-1")
	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, "clip.mp4", info.Name)
}
