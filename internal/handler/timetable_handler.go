package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	"github.com/Yaswanth6303/Timetable-Project/internal/service"
	"github.com/Yaswanth6303/Timetable-Project/pkg/config"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
	"github.com/Yaswanth6303/Timetable-Project/pkg/response"
)

// TimetableHandler wires the admin master-timetable endpoints: spreadsheet
// import, manual entries and exports.
type TimetableHandler struct {
	service *service.TimetableService
	metrics *service.MetricsService
	imports config.ImportConfig
}

// NewTimetableHandler creates a new handler.
func NewTimetableHandler(svc *service.TimetableService, metrics *service.MetricsService, imports config.ImportConfig) *TimetableHandler {
	return &TimetableHandler{service: svc, metrics: metrics, imports: imports}
}

// Upload godoc
// @Summary Import the master timetable from a spreadsheet
// @Description Upsert timetable rows from the first sheet of an xlsx file
// @Tags Timetable
// @Accept multipart/form-data
// @Produce json
// @Param token header string true "Admin JWT"
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 500 {object} response.Body
// @Router /admin/master-timetable/upload [post]
func (h *TimetableHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "File is required"))
		return
	}
	if h.imports.MaxFileSizeBytes > 0 && fileHeader.Size > h.imports.MaxFileSizeBytes {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "File is too large"))
		return
	}
	if !h.mimeAllowed(fileHeader.Header.Get("Content-Type")) {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Only .xlsx files are allowed"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to open file"))
		return
	}
	defer src.Close()

	count, err := h.service.ImportFromSpreadsheet(c.Request.Context(), src)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordImportedRows(count)

	response.OK(c, "Master timetable updated successfully from Excel file", response.Body{"rows": count})
}

func (h *TimetableHandler) mimeAllowed(contentType string) bool {
	if len(h.imports.AllowedMIMEs) == 0 {
		return true
	}
	for _, allowed := range h.imports.AllowedMIMEs {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// ManualEntry godoc
// @Summary Add one master timetable entry
// @Description Create a single timetable row with resolved references
// @Tags Timetable
// @Accept json
// @Produce json
// @Param token header string true "Admin JWT"
// @Param payload body models.ManualEntryRequest true "Timetable entry"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /admin/master-timetable/manual [post]
func (h *TimetableHandler) ManualEntry(c *gin.Context) {
	var req models.ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Validation Error"))
		return
	}

	entry, err := h.service.AddManualEntry(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "New timetable entry added successfully", response.Body{"entry": entry})
}

// Export godoc
// @Summary Export the master timetable
// @Description Download the joined master timetable as CSV or PDF
// @Tags Timetable
// @Produce text/csv
// @Produce application/pdf
// @Param token header string true "Admin JWT"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Body
// @Router /admin/master-timetable/export [get]
func (h *TimetableHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	payload, contentType, err := h.service.ExportMasterTimetable(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("master-timetable.%s", format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, contentType, payload)
}
