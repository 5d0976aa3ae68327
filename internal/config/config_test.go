package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDriveConfig(t *testing.T) {
	path := writeEnv(t, `SERVER_PORT=8080
STORAGE_DRIVER=drive
DRIVE_CLIENT_ID=cid
DRIVE_CLIENT_SECRET=secret
DRIVE_REFRESH_TOKEN=token
DRIVE_FOLDER_ID=folder
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "drive", cfg.StorageDriver)
	assert.Equal(t, "folder", cfg.DriveFolderID)
	// defaults
	assert.Equal(t, "json", cfg.RecordStore)
	assert.Equal(t, "data.json", cfg.DataFile)
	assert.Equal(t, "uploads", cfg.UploadsDir)
}

func TestLoadS3Config(t *testing.T) {
	path := writeEnv(t, `SERVER_PORT=8080
STORAGE_DRIVER=s3
S3_ENDPOINT=http://localhost:9000
S3_BUCKET=forms
S3_ACCESS_KEY_ID=minio
S3_SECRET_ACCESS_KEY=minio123
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "s3", cfg.StorageDriver)
	assert.Equal(t, "forms", cfg.S3Bucket)
	assert.Equal(t, "uploads", cfg.S3Folder)
}

func TestLoadMissingDriverCredentials(t *testing.T) {
	path := writeEnv(t, `SERVER_PORT=8080
STORAGE_DRIVER=drive
DRIVE_CLIENT_ID=cid
`)

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DRIVE_CLIENT_SECRET")
}

func TestLoadUnknownDriver(t *testing.T) {
	path := writeEnv(t, `SERVER_PORT=8080
STORAGE_DRIVER=ftp
`)

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
}

func TestLoadPostgresStoreValidation(t *testing.T) {
	path := writeEnv(t, `SERVER_PORT=8080
STORAGE_DRIVER=s3
S3_ENDPOINT=http://localhost:9000
S3_BUCKET=forms
S3_ACCESS_KEY_ID=minio
S3_SECRET_ACCESS_KEY=minio123
RECORD_STORE=postgres
DB_HOST=localhost
DB_USER=app
DB_PASSWORD=app
DB_NAME=forms
`)

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}
