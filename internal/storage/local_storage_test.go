package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUpload(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(dir, "/uploads")

	content := "fake image bytes"
	result, err := store.Upload(context.Background(), strings.NewReader(content), int64(len(content)), UploadOptions{
		Folder:      "products",
		Filename:    "dish.jpeg",
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)

	assert.Equal(t, BackendLocal, result.Backend)
	assert.True(t, strings.HasPrefix(result.URL, "/uploads/products/"))
	assert.True(t, strings.HasSuffix(result.URL, ".jpg"), "jpeg should normalize to .jpg")

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(result.PublicID)))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestLocalStorageUploadStableName(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(dir, "/uploads")

	for i := 0; i < 2; i++ {
		result, err := store.Upload(context.Background(), strings.NewReader("logo"), 4, UploadOptions{
			Folder:      "site",
			Filename:    "logo.png",
			ContentType: "image/png",
			PublicID:    "logo",
		})
		require.NoError(t, err)
		assert.Equal(t, "site/logo.png", result.PublicID)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "site"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "stable name should overwrite, not accumulate")
}

func TestLocalStorageDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(dir, "/uploads")

	result, err := store.Upload(context.Background(), strings.NewReader("x"), 1, UploadOptions{
		Folder:      "gallery",
		Filename:    "a.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)

	err = store.Delete(context.Background(), result.PublicID)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(result.PublicID)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageDeleteMissingFile(t *testing.T) {
	store := NewLocalStorage(t.TempDir(), "/uploads")

	err := store.Delete(context.Background(), "gallery/does-not-exist.png")
	assert.NoError(t, err, "deleting a missing file should not fail")
}

func TestLocalStorageDeleteRejectsEscapingPath(t *testing.T) {
	store := NewLocalStorage(t.TempDir(), "/uploads")

	err := store.Delete(context.Background(), "../../etc/passwd")
	assert.Error(t, err)
}

func TestSafeExtension(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        string
	}{
		{"from filename", "photo.png", "image/png", ".png"},
		{"jpeg normalized", "photo.jpeg", "image/jpeg", ".jpg"},
		{"no extension falls back to content type", "photo", "image/png", ".png"},
		{"jpeg content type normalized", "photo", "image/jpeg", ".jpg"},
		{"unknown everything", "blob", "application/x-unknown-thing", ".bin"},
		{"oversized extension ignored", "file.superlongext", "image/gif", ".gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeExtension(tt.filename, tt.contentType))
		})
	}
}
