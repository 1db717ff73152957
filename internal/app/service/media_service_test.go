package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seyirtepe/seyirtepe-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMediaService(t *testing.T, maxSize int64) (MediaService, string) {
	t.Helper()

	dir := t.TempDir()
	local := storage.NewLocalStorage(dir, "/uploads")

	// No remote store configured; uploads land on local disk.
	return NewMediaService(nil, local, maxSize), dir
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	svc, dir := setupMediaService(t, 1024)

	_, err := svc.UploadImage(context.Background(), strings.NewReader("%PDF-1.4"), 8, storage.UploadOptions{
		Folder:      "products",
		Filename:    "menu.pdf",
		ContentType: "application/pdf",
	})
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)

	assertNoFiles(t, dir)
}

func TestUploadImageRejectsDeclaredOversize(t *testing.T) {
	svc, dir := setupMediaService(t, 10)

	_, err := svc.UploadImage(context.Background(), strings.NewReader("x"), 11, storage.UploadOptions{
		Folder:      "products",
		Filename:    "big.png",
		ContentType: "image/png",
	})
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	assertNoFiles(t, dir)
}

func TestUploadImageRejectsActualOversize(t *testing.T) {
	svc, dir := setupMediaService(t, 10)

	// declared size is within the limit but the stream is not
	payload := strings.Repeat("a", 50)
	_, err := svc.UploadImage(context.Background(), strings.NewReader(payload), 5, storage.UploadOptions{
		Folder:      "products",
		Filename:    "lying.png",
		ContentType: "image/png",
	})
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	assertNoFiles(t, dir)
}

func TestUploadImageStoresLocally(t *testing.T) {
	svc, dir := setupMediaService(t, 1024)

	result, err := svc.UploadImage(context.Background(), strings.NewReader("png bytes"), 9, storage.UploadOptions{
		Folder:      "gallery",
		Filename:    "terrace.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)

	assert.Equal(t, storage.BackendLocal, result.Backend)
	assert.True(t, strings.HasPrefix(result.URL, "/uploads/gallery/"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(result.PublicID)))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestUploadImageAtExactLimit(t *testing.T) {
	svc, _ := setupMediaService(t, 10)

	payload := strings.Repeat("b", 10)
	result, err := svc.UploadImage(context.Background(), strings.NewReader(payload), 10, storage.UploadOptions{
		Folder:      "gallery",
		Filename:    "exact.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, storage.BackendLocal, result.Backend)
}

func TestRemoveQuietlyToleratesMissingObject(t *testing.T) {
	svc, _ := setupMediaService(t, 1024)

	// must not panic or fail the caller
	svc.RemoveQuietly(context.Background(), storage.BackendLocal, "gallery/gone.png")
	svc.RemoveQuietly(context.Background(), storage.BackendCloud, "site/logo.png")
	svc.RemoveQuietly(context.Background(), storage.BackendLocal, "")
}

func assertNoFiles(t *testing.T, dir string) {
	t.Helper()

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, files, "rejected upload must not leave partial files")
}
