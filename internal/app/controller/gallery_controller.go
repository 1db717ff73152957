package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/service"
	apperrors "github.com/seyirtepe/seyirtepe-backend/internal/errors"
	"github.com/seyirtepe/seyirtepe-backend/internal/middleware"
)

type GalleryController struct {
	galleryService service.GalleryService
	mediaService   service.MediaService
}

func NewGalleryController(galleryService service.GalleryService, mediaService service.MediaService) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
		mediaService:   mediaService,
	}
}

type GalleryImageRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
}

// GetImages lists gallery images, optionally filtered by ?category
// GET /api/v1/gallery
func (ctrl *GalleryController) GetImages(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	images, err := ctrl.galleryService.GetImages(c.Query("category"))
	if err != nil {
		log.Error("Failed to fetch gallery images", err)
		apperrors.InternalError(c, "failed to fetch gallery images")
		return
	}

	c.JSON(http.StatusOK, images)
}

// CreateImage adds a gallery image
// POST /api/v1/gallery
func (ctrl *GalleryController) CreateImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "image_url is required")
		return
	}

	image := &model.GalleryImage{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
	}

	if err := ctrl.galleryService.CreateImage(image); err != nil {
		log.Error("Failed to create gallery image", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "gallery create")
		return
	}

	c.JSON(http.StatusCreated, image)
}

// UpdateImage updates a gallery image
// PUT /api/v1/gallery/:id
func (ctrl *GalleryController) UpdateImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "image_url is required")
		return
	}

	image := &model.GalleryImage{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
	}

	if err := ctrl.galleryService.UpdateImage(image); err != nil {
		if errors.Is(err, service.ErrGalleryImageNotFound) {
			apperrors.NotFound(c, apperrors.GalleryImageNotFound, "gallery image not found")
			return
		}
		log.Error("Failed to update gallery image", err, map[string]interface{}{
			"image_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "gallery update")
		return
	}

	c.JSON(http.StatusOK, image)
}

// DeleteImage deletes a gallery image
// DELETE /api/v1/gallery/:id
func (ctrl *GalleryController) DeleteImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.galleryService.DeleteImage(id); err != nil {
		if errors.Is(err, service.ErrGalleryImageNotFound) {
			apperrors.NotFound(c, apperrors.GalleryImageNotFound, "gallery image not found")
			return
		}
		log.Error("Failed to delete gallery image", err, map[string]interface{}{
			"image_id": id,
		})
		apperrors.InternalError(c, "failed to delete gallery image")
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage stores a gallery image file and returns its URL
// POST /api/v1/gallery/upload-image
func (ctrl *GalleryController) UploadImage(c *gin.Context) {
	uploadImage(c, ctrl.mediaService, "gallery")
}
