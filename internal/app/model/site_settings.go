package model

import "time"

// Storage backends a managed asset can live on. Persisted as plain strings
// so deletion logic can target the right backend later.
const (
	LogoStorageCloud = "cloud"
	LogoStorageLocal = "local"
)

// SiteSettings is a singleton row; id is always 1 and the row is created
// lazily on first access.
type SiteSettings struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	LogoURL      *string   `gorm:"type:varchar(255)" json:"logo_url"`
	LogoStorage  *string   `gorm:"type:varchar(20)" json:"-"`
	LogoPublicID *string   `gorm:"type:varchar(255)" json:"-"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

// SiteSettingsID is the well-known key of the singleton row.
const SiteSettingsID uint = 1
