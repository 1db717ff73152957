package service

import (
	"errors"
	"time"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

type OrderService interface {
	CreateOrder(order *model.Order) error
	GetOrders(offset, limit int) ([]model.Order, error)
	GetOrderByID(id uint) (*model.Order, error)
	UpdateOrderStatus(id uint, status string) (*model.Order, error)
	DeleteOrder(id uint) error
	GetOrdersBetween(start, end time.Time) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// CreateOrder stores a new order. The order always starts out pending
// regardless of what the caller submitted.
func (s *orderService) CreateOrder(order *model.Order) error {
	order.Status = model.OrderStatusPending

	logger.Info("Creating order", map[string]interface{}{
		"customer_name": order.CustomerName,
		"total_amount":  order.TotalAmount,
		"items_count":   len(order.Items),
	})

	if err := s.orderRepo.Create(order); err != nil {
		return err
	}

	logger.Info("Order created", map[string]interface{}{
		"order_id": order.ID,
	})
	return nil
}

func (s *orderService) GetOrders(offset, limit int) ([]model.Order, error) {
	orders, err := s.orderRepo.FindAll(offset, limit)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Normalize()
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order.Normalize()
	return order, nil
}

// UpdateOrderStatus sets the order status after validating that the
// submitted value is a known status. Invalid input leaves the stored
// status untouched.
func (s *orderService) UpdateOrderStatus(id uint, status string) (*model.Order, error) {
	newStatus := model.OrderStatus(status)
	if !newStatus.Valid() {
		logger.Warn("Rejected order status update: unknown status", map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return nil, ErrInvalidOrderStatus
	}

	if _, err := s.GetOrderByID(id); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(id, newStatus); err != nil {
		return nil, err
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": id,
		"status":   newStatus,
	})

	return s.GetOrderByID(id)
}

func (s *orderService) DeleteOrder(id uint) error {
	if _, err := s.GetOrderByID(id); err != nil {
		return err
	}

	if err := s.orderRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Order deleted", map[string]interface{}{
		"order_id": id,
	})
	return nil
}

func (s *orderService) GetOrdersBetween(start, end time.Time) ([]model.Order, error) {
	orders, err := s.orderRepo.FindCreatedBetween(start, end)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Normalize()
	}
	return orders, nil
}
