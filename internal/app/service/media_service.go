package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/seyirtepe/seyirtepe-backend/internal/storage"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
)

var (
	ErrUnsupportedMediaType = errors.New("only image uploads are allowed")
	ErrPayloadTooLarge      = errors.New("uploaded file exceeds the size limit")
	ErrStorageFailure       = errors.New("failed to store uploaded file")
)

// MediaService stores uploaded images, preferring the remote object
// store and falling back to local disk.
type MediaService interface {
	UploadImage(ctx context.Context, file io.Reader, size int64, opts storage.UploadOptions) (*storage.UploadResult, error)
	Remove(ctx context.Context, backend storage.Backend, publicID string) error
	RemoveQuietly(ctx context.Context, backend storage.Backend, publicID string)
}

type mediaService struct {
	remote  *storage.S3Storage
	local   *storage.LocalStorage
	maxSize int64
}

func NewMediaService(remote *storage.S3Storage, local *storage.LocalStorage, maxSize int64) MediaService {
	return &mediaService{
		remote:  remote,
		local:   local,
		maxSize: maxSize,
	}
}

// UploadImage validates and stores one image. The whole payload is
// buffered in memory before any backend write, so an oversized upload
// is rejected without leaving partial bytes anywhere.
func (s *mediaService) UploadImage(ctx context.Context, file io.Reader, size int64, opts storage.UploadOptions) (*storage.UploadResult, error) {
	if !strings.HasPrefix(strings.ToLower(opts.ContentType), "image/") {
		logger.Warn("Upload rejected: not an image", map[string]interface{}{
			"content_type": opts.ContentType,
			"filename":     opts.Filename,
		})
		return nil, ErrUnsupportedMediaType
	}

	if size > s.maxSize {
		logger.Warn("Upload rejected: declared size over limit", map[string]interface{}{
			"size":     size,
			"max_size": s.maxSize,
			"filename": opts.Filename,
		})
		return nil, ErrPayloadTooLarge
	}

	// The declared size can lie, so re-check while buffering.
	buf := &bytes.Buffer{}
	n, err := io.Copy(buf, io.LimitReader(file, s.maxSize+1))
	if err != nil {
		logger.Error("Failed to read upload payload", err, map[string]interface{}{
			"filename": opts.Filename,
		})
		return nil, ErrStorageFailure
	}
	if n > s.maxSize {
		logger.Warn("Upload rejected: payload over limit", map[string]interface{}{
			"max_size": s.maxSize,
			"filename": opts.Filename,
		})
		return nil, ErrPayloadTooLarge
	}

	if s.remote.Configured() {
		result, err := s.remote.Upload(ctx, bytes.NewReader(buf.Bytes()), n, opts)
		if err == nil {
			return result, nil
		}
		logger.Warn("Remote upload failed, falling back to local storage", map[string]interface{}{
			"filename": opts.Filename,
			"error":    err.Error(),
		})
	}

	result, err := s.local.Upload(ctx, bytes.NewReader(buf.Bytes()), n, opts)
	if err != nil {
		logger.Error("Local upload failed", err, map[string]interface{}{
			"filename": opts.Filename,
		})
		return nil, ErrStorageFailure
	}
	return result, nil
}

// Remove deletes a stored object from the backend it was written to.
func (s *mediaService) Remove(ctx context.Context, backend storage.Backend, publicID string) error {
	if publicID == "" {
		return nil
	}

	switch backend {
	case storage.BackendCloud:
		if !s.remote.Configured() {
			return nil
		}
		return s.remote.Delete(ctx, publicID)
	default:
		return s.local.Delete(ctx, publicID)
	}
}

// RemoveQuietly deletes a stored object, logging rather than returning
// failures. Used when cleanup must not block the main operation.
func (s *mediaService) RemoveQuietly(ctx context.Context, backend storage.Backend, publicID string) {
	if err := s.Remove(ctx, backend, publicID); err != nil {
		logger.Warn("Failed to remove stored object", map[string]interface{}{
			"backend":   string(backend),
			"public_id": publicID,
			"error":     err.Error(),
		})
	}
}
