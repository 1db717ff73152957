package service

import (
	"context"
	"io"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/internal/storage"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
)

// logoPublicID is the stable object name for the site logo. Re-uploads
// with the same extension overwrite in place instead of accumulating.
const logoPublicID = "logo"

type SiteSettingsService interface {
	GetSettings() (*model.SiteSettings, error)
	UploadLogo(ctx context.Context, file io.Reader, size int64, filename, contentType string) (*model.SiteSettings, *storage.UploadResult, error)
	ClearLogo(ctx context.Context) (*model.SiteSettings, error)
}

type siteSettingsService struct {
	settingsRepo repository.SiteSettingsRepository
	media        MediaService
}

func NewSiteSettingsService(settingsRepo repository.SiteSettingsRepository, media MediaService) SiteSettingsService {
	return &siteSettingsService{
		settingsRepo: settingsRepo,
		media:        media,
	}
}

func (s *siteSettingsService) GetSettings() (*model.SiteSettings, error) {
	return s.settingsRepo.Get()
}

// UploadLogo stores a new logo and replaces the previous one. The old
// object is removed best-effort after the new one is saved.
func (s *siteSettingsService) UploadLogo(ctx context.Context, file io.Reader, size int64, filename, contentType string) (*model.SiteSettings, *storage.UploadResult, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, nil, err
	}

	result, err := s.media.UploadImage(ctx, file, size, storage.UploadOptions{
		Folder:      "site",
		Filename:    filename,
		ContentType: contentType,
		PublicID:    logoPublicID,
	})
	if err != nil {
		return nil, nil, err
	}

	oldBackend, oldPublicID := logoObject(settings)

	backend := string(result.Backend)
	settings.LogoURL = &result.URL
	settings.LogoStorage = &backend
	settings.LogoPublicID = &result.PublicID

	if err := s.settingsRepo.Save(settings); err != nil {
		// The new object is orphaned now; clean it up.
		s.media.RemoveQuietly(ctx, result.Backend, result.PublicID)
		return nil, nil, err
	}

	// A stable name means the same backend and extension overwrite in
	// place, so only remove when the stored object actually moved.
	if oldPublicID != "" && (oldBackend != result.Backend || oldPublicID != result.PublicID) {
		s.media.RemoveQuietly(ctx, oldBackend, oldPublicID)
	}

	logger.Info("Site logo updated", map[string]interface{}{
		"url":     result.URL,
		"storage": backend,
	})

	return settings, result, nil
}

// ClearLogo removes the logo from the settings row and deletes the
// stored object best-effort.
func (s *siteSettingsService) ClearLogo(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	oldBackend, oldPublicID := logoObject(settings)

	settings.LogoURL = nil
	settings.LogoStorage = nil
	settings.LogoPublicID = nil

	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, err
	}

	if oldPublicID != "" {
		s.media.RemoveQuietly(ctx, oldBackend, oldPublicID)
	}

	logger.Info("Site logo cleared")
	return settings, nil
}

func logoObject(settings *model.SiteSettings) (storage.Backend, string) {
	if settings.LogoPublicID == nil || *settings.LogoPublicID == "" {
		return storage.BackendLocal, ""
	}
	backend := storage.BackendLocal
	if settings.LogoStorage != nil && *settings.LogoStorage == string(storage.BackendCloud) {
		backend = storage.BackendCloud
	}
	return backend, *settings.LogoPublicID
}
