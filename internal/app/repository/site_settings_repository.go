package repository

import (
	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
	"gorm.io/gorm"
)

type SiteSettingsRepository interface {
	Get() (*model.SiteSettings, error)
	Save(settings *model.SiteSettings) error
}

type siteSettingsRepository struct {
	db *gorm.DB
}

func NewSiteSettingsRepository(db *gorm.DB) SiteSettingsRepository {
	return &siteSettingsRepository{db: db}
}

// Get returns the singleton settings row, creating it on first access.
func (r *siteSettingsRepository) Get() (*model.SiteSettings, error) {
	settings := model.SiteSettings{ID: model.SiteSettingsID}
	if err := r.db.Where(model.SiteSettings{ID: model.SiteSettingsID}).
		FirstOrCreate(&settings).Error; err != nil {
		logger.Error("Failed to load site settings from database", err)
		return nil, err
	}
	return &settings, nil
}

func (r *siteSettingsRepository) Save(settings *model.SiteSettings) error {
	settings.ID = model.SiteSettingsID

	if err := r.db.Save(settings).Error; err != nil {
		logger.Error("Failed to save site settings in database", err)
		return err
	}

	logger.Debug("Site settings saved in database", map[string]interface{}{
		"has_logo": settings.LogoURL != nil,
	})
	return nil
}
