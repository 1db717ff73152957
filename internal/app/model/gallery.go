package model

import "time"

// GalleryImage is a photo shown on the public gallery page. Category is a
// free-form grouping label (Interior, Food, Events, View).
type GalleryImage struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"type:varchar(200)" json:"title,omitempty"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string    `gorm:"type:varchar(255);not null" json:"image_url"`
	ThumbnailURL string    `gorm:"type:varchar(255)" json:"thumbnail_url,omitempty"`
	Category     string    `gorm:"type:varchar(100)" json:"category,omitempty"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
