package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
)

// LocalStorage stores objects on the local filesystem under a base
// directory served as static files.
type LocalStorage struct {
	dir     string
	baseURL string // URL prefix for stored files, e.g. "/uploads"
}

func NewLocalStorage(dir, baseURL string) *LocalStorage {
	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (l *LocalStorage) Upload(ctx context.Context, data io.Reader, size int64, opts UploadOptions) (*UploadResult, error) {
	name := opts.PublicID
	if name == "" {
		name = uuid.New().String()
	}
	relPath := filepath.Join(opts.Folder, name+safeExtension(opts.Filename, opts.ContentType))
	fullPath := filepath.Join(l.dir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	logger.Debug("File stored on local disk", map[string]interface{}{
		"path": fullPath,
		"size": size,
	})

	return &UploadResult{
		URL:      l.baseURL + "/" + filepath.ToSlash(relPath),
		PublicID: filepath.ToSlash(relPath),
		Backend:  BackendLocal,
	}, nil
}

// Delete removes a stored file. A missing file is not an error.
func (l *LocalStorage) Delete(ctx context.Context, publicID string) error {
	fullPath := filepath.Join(l.dir, filepath.FromSlash(publicID))

	// Refuse paths that escape the upload directory.
	absDir, err := filepath.Abs(l.dir)
	if err != nil {
		return err
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(absPath, absDir+string(os.PathSeparator)) {
		return fmt.Errorf("invalid file path: %s", publicID)
	}

	if err := os.Remove(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		logger.Error("Failed to delete local file", err, map[string]interface{}{
			"path": absPath,
		})
		return err
	}

	logger.Debug("File deleted from local disk", map[string]interface{}{
		"path": absPath,
	})
	return nil
}
