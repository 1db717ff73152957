package repository

import (
	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
	"gorm.io/gorm"
)

type GalleryRepository interface {
	Create(image *model.GalleryImage) error
	FindAll(category string) ([]model.GalleryImage, error)
	FindByID(id uint) (*model.GalleryImage, error)
	Update(image *model.GalleryImage) error
	Delete(id uint) error
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(image *model.GalleryImage) error {
	if err := r.db.Create(image).Error; err != nil {
		logger.Error("Failed to create gallery image in database", err, map[string]interface{}{
			"title": image.Title,
		})
		return err
	}

	logger.Debug("Gallery image created in database", map[string]interface{}{
		"image_id": image.ID,
		"title":    image.Title,
	})
	return nil
}

// FindAll lists gallery images, optionally filtered by category.
func (r *galleryRepository) FindAll(category string) ([]model.GalleryImage, error) {
	query := r.db.Order("display_order ASC, id ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var images []model.GalleryImage
	if err := query.Find(&images).Error; err != nil {
		logger.Error("Failed to find gallery images in database", err, map[string]interface{}{
			"category": category,
		})
		return nil, err
	}

	logger.Debug("Gallery images found in database", map[string]interface{}{
		"category": category,
		"count":    len(images),
	})
	return images, nil
}

func (r *galleryRepository) FindByID(id uint) (*model.GalleryImage, error) {
	var image model.GalleryImage
	if err := r.db.First(&image, id).Error; err != nil {
		logger.Error("Failed to find gallery image by ID in database", err, map[string]interface{}{
			"image_id": id,
		})
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) Update(image *model.GalleryImage) error {
	if err := r.db.Save(image).Error; err != nil {
		logger.Error("Failed to update gallery image in database", err, map[string]interface{}{
			"image_id": image.ID,
		})
		return err
	}

	logger.Debug("Gallery image updated in database", map[string]interface{}{
		"image_id": image.ID,
	})
	return nil
}

func (r *galleryRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.GalleryImage{}, id).Error; err != nil {
		logger.Error("Failed to delete gallery image in database", err, map[string]interface{}{
			"image_id": id,
		})
		return err
	}

	logger.Debug("Gallery image deleted from database", map[string]interface{}{
		"image_id": id,
	})
	return nil
}
