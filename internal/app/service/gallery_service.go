package service

import (
	"errors"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrGalleryImageNotFound = errors.New("gallery image not found")

type GalleryService interface {
	CreateImage(image *model.GalleryImage) error
	GetImages(category string) ([]model.GalleryImage, error)
	GetImageByID(id uint) (*model.GalleryImage, error)
	UpdateImage(image *model.GalleryImage) error
	DeleteImage(id uint) error
}

type galleryService struct {
	galleryRepo repository.GalleryRepository
}

func NewGalleryService(galleryRepo repository.GalleryRepository) GalleryService {
	return &galleryService{galleryRepo: galleryRepo}
}

func (s *galleryService) CreateImage(image *model.GalleryImage) error {
	if err := s.galleryRepo.Create(image); err != nil {
		return err
	}

	logger.Info("Gallery image created", map[string]interface{}{
		"image_id": image.ID,
		"title":    image.Title,
	})
	return nil
}

func (s *galleryService) GetImages(category string) ([]model.GalleryImage, error) {
	return s.galleryRepo.FindAll(category)
}

func (s *galleryService) GetImageByID(id uint) (*model.GalleryImage, error) {
	image, err := s.galleryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryImageNotFound
		}
		return nil, err
	}
	return image, nil
}

func (s *galleryService) UpdateImage(image *model.GalleryImage) error {
	if _, err := s.GetImageByID(image.ID); err != nil {
		return err
	}

	if err := s.galleryRepo.Update(image); err != nil {
		return err
	}

	logger.Info("Gallery image updated", map[string]interface{}{
		"image_id": image.ID,
	})
	return nil
}

func (s *galleryService) DeleteImage(id uint) error {
	if _, err := s.GetImageByID(id); err != nil {
		return err
	}

	if err := s.galleryRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Gallery image deleted", map[string]interface{}{
		"image_id": id,
	})
	return nil
}
