package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/service"
	apperrors "github.com/seyirtepe/seyirtepe-backend/internal/errors"
	"github.com/seyirtepe/seyirtepe-backend/internal/middleware"
)

type SiteSettingsController struct {
	settingsService service.SiteSettingsService
}

func NewSiteSettingsController(settingsService service.SiteSettingsService) *SiteSettingsController {
	return &SiteSettingsController{
		settingsService: settingsService,
	}
}

// GetSettings returns the site settings
// GET /api/v1/site-settings
func (ctrl *SiteSettingsController) GetSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	settings, err := ctrl.settingsService.GetSettings()
	if err != nil {
		log.Error("Failed to fetch site settings", err)
		apperrors.InternalError(c, "failed to fetch site settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UploadLogo replaces the site logo
// POST /api/v1/site-settings/logo
func (ctrl *SiteSettingsController) UploadLogo(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "a file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded logo", err, map[string]interface{}{
			"filename": fileHeader.Filename,
		})
		apperrors.InternalError(c, "failed to read uploaded file")
		return
	}
	defer file.Close()

	settings, result, err := ctrl.settingsService.UploadLogo(
		c.Request.Context(), file, fileHeader.Size,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		respondUploadError(c, err, fileHeader.Filename)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logo_url": settings.LogoURL,
		"storage":  result.Backend,
	})
}

// DeleteLogo clears the site logo
// DELETE /api/v1/site-settings/logo
func (ctrl *SiteSettingsController) DeleteLogo(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	settings, err := ctrl.settingsService.ClearLogo(c.Request.Context())
	if err != nil {
		log.Error("Failed to clear site logo", err)
		apperrors.InternalError(c, "failed to clear site logo")
		return
	}

	c.JSON(http.StatusOK, settings)
}
