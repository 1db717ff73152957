package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// DailySummary aggregates one day of intake for the admin digest.
type DailySummary struct {
	Date              string           `json:"date"`
	TotalOrders       int64            `json:"total_orders"`
	OrdersByStatus    map[string]int64 `json:"orders_by_status"`
	TotalRevenue      float64          `json:"total_revenue"`
	TotalReservations int64            `json:"total_reservations"`
}

type ReportService interface {
	OrdersWorkbook(start, end time.Time) (*excelize.File, error)
	ReservationsWorkbook(start, end time.Time) (*excelize.File, error)
	Summarize(day time.Time) (*DailySummary, error)
}

type reportService struct {
	orderRepo       repository.OrderRepository
	reservationRepo repository.ReservationRepository
}

func NewReportService(orderRepo repository.OrderRepository, reservationRepo repository.ReservationRepository) ReportService {
	return &reportService{
		orderRepo:       orderRepo,
		reservationRepo: reservationRepo,
	}
}

// OrdersWorkbook builds an XLSX export of orders created in [start, end).
func (s *reportService) OrdersWorkbook(start, end time.Time) (*excelize.File, error) {
	orders, err := s.orderRepo.FindCreatedBetween(start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Created At", "Customer", "Phone", "Address", "Items", "Total", "Status", "Notes"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, order := range orders {
		order.Normalize()
		values := []interface{}{
			order.ID,
			order.CreatedAt.Format(time.RFC3339),
			order.CustomerName,
			order.CustomerPhone,
			order.CustomerAddress,
			formatOrderItems(order.Items),
			order.TotalAmount,
			string(order.Status),
			order.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	logger.Info("Orders workbook generated", map[string]interface{}{
		"start": start,
		"end":   end,
		"rows":  len(orders),
	})
	return f, nil
}

// ReservationsWorkbook builds an XLSX export of reservations created in
// [start, end).
func (s *reportService) ReservationsWorkbook(start, end time.Time) (*excelize.File, error) {
	reservations, err := s.reservationRepo.FindCreatedBetween(start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Created At", "Customer", "Phone", "Email", "Date", "Guests", "Status", "Special Requests"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, reservation := range reservations {
		reservation.Normalize()
		email := ""
		if reservation.CustomerEmail != nil {
			email = *reservation.CustomerEmail
		}
		values := []interface{}{
			reservation.ID,
			reservation.CreatedAt.Format(time.RFC3339),
			reservation.CustomerName,
			reservation.CustomerPhone,
			email,
			reservation.Date.Format(time.RFC3339),
			reservation.Guests,
			string(reservation.Status),
			reservation.SpecialRequests,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	logger.Info("Reservations workbook generated", map[string]interface{}{
		"start": start,
		"end":   end,
		"rows":  len(reservations),
	})
	return f, nil
}

// Summarize aggregates orders and reservations created on the given day.
func (s *reportService) Summarize(day time.Time) (*DailySummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	statusCounts, err := s.orderRepo.CountByStatusBetween(start, end)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindCreatedBetween(start, end)
	if err != nil {
		return nil, err
	}

	var totalOrders int64
	var totalRevenue float64
	for _, order := range orders {
		totalOrders++
		if model.NormalizeOrderStatus(order.Status) != model.OrderStatusCancelled {
			totalRevenue += order.TotalAmount
		}
	}

	totalReservations, err := s.reservationRepo.CountCreatedBetween(start, end)
	if err != nil {
		return nil, err
	}

	return &DailySummary{
		Date:              start.Format("2006-01-02"),
		TotalOrders:       totalOrders,
		OrdersByStatus:    statusCounts,
		TotalRevenue:      totalRevenue,
		TotalReservations: totalReservations,
	}, nil
}

func formatOrderItems(items model.OrderItems) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.ProductName, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
