package storage

import (
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

// Backend identifies where an uploaded object lives.
type Backend string

const (
	BackendCloud Backend = "cloud"
	BackendLocal Backend = "local"
)

// UploadResult describes a stored object.
type UploadResult struct {
	URL      string  `json:"url"`
	PublicID string  `json:"public_id"`
	Backend  Backend `json:"backend"`
}

// UploadOptions controls where and under what name an object is stored.
type UploadOptions struct {
	Folder      string // key prefix, e.g. "products" or "site"
	Filename    string // original filename, used for extension inference
	ContentType string
	PublicID    string // stable object name; empty means a generated one
}

// ObjectStore stores and removes uploaded binary objects.
type ObjectStore interface {
	Upload(ctx context.Context, data io.Reader, size int64, opts UploadOptions) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

// safeExtension infers a file extension from the original filename,
// falling back to the content type. Returns an extension with a leading
// dot, or ".bin" when nothing usable is found.
func safeExtension(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" && len(ext) <= 5 {
		if ext == ".jpeg" {
			return ".jpg"
		}
		return ext
	}

	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		for _, e := range exts {
			if e == ".jpg" || e == ".jpeg" {
				return ".jpg"
			}
		}
		return exts[0]
	}

	return ".bin"
}
