package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/service"
	apperrors "github.com/seyirtepe/seyirtepe-backend/internal/errors"
	"github.com/seyirtepe/seyirtepe-backend/internal/middleware"
)

type ReservationController struct {
	reservationService service.ReservationService
	reportService      service.ReportService
}

func NewReservationController(reservationService service.ReservationService, reportService service.ReportService) *ReservationController {
	return &ReservationController{
		reservationService: reservationService,
		reportService:      reportService,
	}
}

type CreateReservationRequest struct {
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerPhone   string    `json:"customer_phone" binding:"required"`
	CustomerEmail   *string   `json:"customer_email"`
	Date            time.Time `json:"date" binding:"required"`
	Guests          int       `json:"guests" binding:"required,min=1"`
	SpecialRequests string    `json:"special_requests"`
}

// CreateReservation places a new reservation request
// POST /api/v1/reservations
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "customer_name, customer_phone, date and guests are required")
		return
	}

	reservation := &model.Reservation{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		Date:            req.Date,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}

	if err := ctrl.reservationService.CreateReservation(reservation); err != nil {
		log.Error("Failed to create reservation", err, map[string]interface{}{
			"customer_name": req.CustomerName,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "reservation create")
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// GetReservations lists reservations newest first
// GET /api/v1/reservations?skip=0&limit=100
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	reservations, err := ctrl.reservationService.GetReservations(offset, limit)
	if err != nil {
		log.Error("Failed to fetch reservations", err)
		apperrors.InternalError(c, "failed to fetch reservations")
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation returns one reservation
// GET /api/v1/reservations/:id
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := ctrl.reservationService.GetReservationByID(id)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			apperrors.NotFound(c, apperrors.ReservationNotFound, "reservation not found")
			return
		}
		middleware.GetLoggerFromContext(c).Error("Failed to fetch reservation", err, map[string]interface{}{
			"reservation_id": id,
		})
		apperrors.InternalError(c, "failed to fetch reservation")
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// UpdateReservationStatus updates the status of a reservation
// PATCH /api/v1/reservations/:id
func (ctrl *ReservationController) UpdateReservationStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "status is required")
		return
	}

	reservation, err := ctrl.reservationService.UpdateReservationStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReservationStatus):
			apperrors.BadRequest(c, apperrors.ReservationInvalidStatus, "unknown reservation status: "+req.Status)
		case errors.Is(err, service.ErrReservationNotFound):
			apperrors.NotFound(c, apperrors.ReservationNotFound, "reservation not found")
		default:
			log.Error("Failed to update reservation status", err, map[string]interface{}{
				"reservation_id": id,
				"status":         req.Status,
			})
			apperrors.InternalError(c, "failed to update reservation status")
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// ExportReservations streams an XLSX export of reservations
// GET /api/v1/reservations/export?start=2026-08-01&end=2026-08-31
func (ctrl *ReservationController) ExportReservations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	start, end, ok := parseExportRange(c)
	if !ok {
		return
	}

	workbook, err := ctrl.reportService.ReservationsWorkbook(start, end)
	if err != nil {
		log.Error("Failed to build reservations export", err)
		apperrors.InternalError(c, "failed to build export")
		return
	}
	defer workbook.Close()

	writeWorkbook(c, workbook, fmt.Sprintf("reservations-%s.xlsx", start.Format("2006-01-02")))
}
