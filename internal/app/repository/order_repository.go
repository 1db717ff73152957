package repository

import (
	"time"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindAll(offset, limit int) ([]model.Order, error)
	FindByID(id uint) (*model.Order, error)
	UpdateStatus(id uint, status model.OrderStatus) error
	Delete(id uint) error
	FindCreatedBetween(start, end time.Time) ([]model.Order, error)
	CountByStatusBetween(start, end time.Time) (map[string]int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"customer_name": order.CustomerName,
		"total_amount":  order.TotalAmount,
		"items_count":   len(order.Items),
	})

	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"customer_name": order.CustomerName,
			"total_amount":  order.TotalAmount,
		})
		return err
	}

	logger.Debug("Order created in database", map[string]interface{}{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
	})
	return nil
}

func (r *orderRepository) FindAll(offset, limit int) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders in database", err, map[string]interface{}{
			"offset": offset,
			"limit":  limit,
		})
		return nil, err
	}

	logger.Debug("Orders found in database", map[string]interface{}{
		"offset": offset,
		"limit":  limit,
		"count":  len(orders),
	})
	return orders, nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.First(&order, id).Error; err != nil {
		logger.Error("Failed to find order by ID in database", err, map[string]interface{}{
			"order_id": id,
		})
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(id uint, status model.OrderStatus) error {
	if err := r.db.Model(&model.Order{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		logger.Error("Failed to update order status in database", err, map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return err
	}

	logger.Debug("Order status updated in database", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})
	return nil
}

func (r *orderRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Order{}, id).Error; err != nil {
		logger.Error("Failed to delete order in database", err, map[string]interface{}{
			"order_id": id,
		})
		return err
	}

	logger.Debug("Order deleted from database", map[string]interface{}{
		"order_id": id,
	})
	return nil
}

func (r *orderRepository) FindCreatedBetween(start, end time.Time) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by period in database", err, map[string]interface{}{
			"start": start,
			"end":   end,
		})
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) CountByStatusBetween(start, end time.Time) (map[string]int64, error) {
	statusCounts := []struct {
		Status string
		Count  int64
	}{}
	if err := r.db.Model(&model.Order{}).
		Select("status, COUNT(*) as count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		logger.Error("Failed to count orders by status in database", err, map[string]interface{}{
			"start": start,
			"end":   end,
		})
		return nil, err
	}

	counts := make(map[string]int64, len(statusCounts))
	for _, sc := range statusCounts {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}
