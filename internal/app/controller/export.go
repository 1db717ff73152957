package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seyirtepe/seyirtepe-backend/internal/middleware"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeWorkbook streams an XLSX workbook as a file download.
func writeWorkbook(c *gin.Context, workbook *excelize.File, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := workbook.Write(c.Writer); err != nil {
		// Headers are already sent; all we can do is log.
		middleware.GetLoggerFromContext(c).Error("Failed to stream workbook", err, map[string]interface{}{
			"filename": filename,
		})
	}
}
