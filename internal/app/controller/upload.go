package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/service"
	apperrors "github.com/seyirtepe/seyirtepe-backend/internal/errors"
	"github.com/seyirtepe/seyirtepe-backend/internal/middleware"
	"github.com/seyirtepe/seyirtepe-backend/internal/storage"
)

// uploadImage handles a multipart image upload from the "file" field and
// responds with the stored URL and the backend it landed on.
func uploadImage(c *gin.Context, media service.MediaService, folder string) {
	log := middleware.GetLoggerFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "a file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", err, map[string]interface{}{
			"filename": fileHeader.Filename,
		})
		apperrors.InternalError(c, "failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := media.UploadImage(c.Request.Context(), file, fileHeader.Size, storage.UploadOptions{
		Folder:      folder,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		respondUploadError(c, err, fileHeader.Filename)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":     result.URL,
		"storage": result.Backend,
	})
}

func respondUploadError(c *gin.Context, err error, filename string) {
	switch {
	case errors.Is(err, service.ErrUnsupportedMediaType):
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "only image files are allowed")
	case errors.Is(err, service.ErrPayloadTooLarge):
		apperrors.RespondWithError(c, http.StatusRequestEntityTooLarge, apperrors.UploadFileTooLarge, "uploaded file exceeds the size limit")
	default:
		middleware.GetLoggerFromContext(c).Error("Upload failed", err, map[string]interface{}{
			"filename": filename,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "failed to store uploaded file")
	}
}
