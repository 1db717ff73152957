package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/service"
	apperrors "github.com/seyirtepe/seyirtepe-backend/internal/errors"
	"github.com/seyirtepe/seyirtepe-backend/internal/middleware"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 500
)

type OrderController struct {
	orderService  service.OrderService
	reportService service.ReportService
}

func NewOrderController(orderService service.OrderService, reportService service.ReportService) *OrderController {
	return &OrderController{
		orderService:  orderService,
		reportService: reportService,
	}
}

type OrderItemInput struct {
	ProductID   uint    `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required,gte=0"`
}

type CreateOrderRequest struct {
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerPhone   string           `json:"customer_phone" binding:"required"`
	CustomerAddress string           `json:"customer_address"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	TotalAmount     float64          `json:"total_amount" binding:"required,gte=0"`
	Notes           string           `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder places a new order
// POST /api/v1/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "customer_name, customer_phone, items and total_amount are required")
		return
	}

	items := make(model.OrderItems, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItemSnapshot{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	order := &model.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
		TotalAmount:     req.TotalAmount,
		Notes:           req.Notes,
	}

	if err := ctrl.orderService.CreateOrder(order); err != nil {
		log.Error("Failed to create order", err, map[string]interface{}{
			"customer_name": req.CustomerName,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "order create")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders lists orders newest first
// GET /api/v1/orders?skip=0&limit=100
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	orders, err := ctrl.orderService.GetOrders(offset, limit)
	if err != nil {
		log.Error("Failed to fetch orders", err)
		apperrors.InternalError(c, "failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder returns one order
// GET /api/v1/orders/:id
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := ctrl.orderService.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "order not found")
			return
		}
		middleware.GetLoggerFromContext(c).Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.InternalError(c, "failed to fetch order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus updates the status of an order
// PATCH /api/v1/orders/:id
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
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

	order, err := ctrl.orderService.UpdateOrderStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "unknown order status: "+req.Status)
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "order not found")
		default:
			log.Error("Failed to update order status", err, map[string]interface{}{
				"order_id": id,
				"status":   req.Status,
			})
			apperrors.InternalError(c, "failed to update order status")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder deletes an order
// DELETE /api/v1/orders/:id
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.orderService.DeleteOrder(id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "order not found")
			return
		}
		log.Error("Failed to delete order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.InternalError(c, "failed to delete order")
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportOrders streams an XLSX export of orders
// GET /api/v1/orders/export?start=2026-08-01&end=2026-08-31
func (ctrl *OrderController) ExportOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	start, end, ok := parseExportRange(c)
	if !ok {
		return
	}

	workbook, err := ctrl.reportService.OrdersWorkbook(start, end)
	if err != nil {
		log.Error("Failed to build orders export", err)
		apperrors.InternalError(c, "failed to build export")
		return
	}
	defer workbook.Close()

	writeWorkbook(c, workbook, fmt.Sprintf("orders-%s.xlsx", start.Format("2006-01-02")))
}

// parsePagination reads skip/limit query parameters.
func parsePagination(c *gin.Context) (offset, limit int, ok bool) {
	offset, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || offset < 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid skip")
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid limit")
		return 0, 0, false
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return offset, limit, true
}

// parseExportRange reads the start/end query parameters as dates.
// Defaults to the last 30 days.
func parseExportRange(c *gin.Context) (start, end time.Time, ok bool) {
	now := time.Now()
	start = now.AddDate(0, 0, -30)
	end = now

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "start must be YYYY-MM-DD")
			return start, end, false
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "end must be YYYY-MM-DD")
			return start, end, false
		}
		// inclusive end date
		end = parsed.AddDate(0, 0, 1)
	}

	if end.Before(start) {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "end must not be before start")
		return start, end, false
	}

	return start, end, true
}
