package service

import (
	"testing"
	"time"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderService(t *testing.T) (OrderService, *gorm.DB) {
	t.Helper()

	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	return NewOrderService(repository.NewOrderRepository(database)), database
}

func newTestOrder() *model.Order {
	return &model.Order{
		CustomerName:  "Ayse Yilmaz",
		CustomerPhone: "+90-555-000-1122",
		Items: model.OrderItems{
			{ProductID: 1, ProductName: "Adana Kebap", Quantity: 2, Price: 180},
			{ProductID: 4, ProductName: "Ayran", Quantity: 2, Price: 25},
		},
		TotalAmount: 410,
	}
}

func TestCreateOrderStartsPending(t *testing.T) {
	svc, _ := setupOrderService(t)

	order := newTestOrder()
	order.Status = "delivered" // submitted status must be ignored

	require.NoError(t, svc.CreateOrder(order))
	assert.NotZero(t, order.ID)

	stored, err := svc.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, stored.Status)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, "Adana Kebap", stored.Items[0].ProductName)
}

func TestGetOrdersPagination(t *testing.T) {
	svc, _ := setupOrderService(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.CreateOrder(newTestOrder()))
	}

	orders, err := svc.GetOrders(0, 3)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	orders, err = svc.GetOrders(3, 3)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	svc, _ := setupOrderService(t)

	_, err := svc.GetOrderByID(9999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _ := setupOrderService(t)

	order := newTestOrder()
	require.NoError(t, svc.CreateOrder(order))

	updated, err := svc.UpdateOrderStatus(order.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestUpdateOrderStatusInvalid(t *testing.T) {
	svc, _ := setupOrderService(t)

	order := newTestOrder()
	require.NoError(t, svc.CreateOrder(order))

	tests := []struct {
		name   string
		status string
	}{
		{"unknown value", "shipped"},
		{"uppercase rejected", "CONFIRMED"},
		{"empty", ""},
		{"adjacent-sounding value", "in_progress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateOrderStatus(order.ID, tt.status)
			assert.ErrorIs(t, err, ErrInvalidOrderStatus)

			stored, err := svc.GetOrderByID(order.ID)
			require.NoError(t, err)
			assert.Equal(t, model.OrderStatusPending, stored.Status, "stored status must stay unchanged")
		})
	}
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	svc, _ := setupOrderService(t)

	_, err := svc.UpdateOrderStatus(9999, "confirmed")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDeleteOrder(t *testing.T) {
	svc, _ := setupOrderService(t)

	order := newTestOrder()
	require.NoError(t, svc.CreateOrder(order))

	require.NoError(t, svc.DeleteOrder(order.ID))

	_, err := svc.GetOrderByID(order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	assert.ErrorIs(t, svc.DeleteOrder(order.ID), ErrOrderNotFound)
}

func TestOrderStatusNormalizationOnRead(t *testing.T) {
	svc, database := setupOrderService(t)

	order := newTestOrder()
	require.NoError(t, svc.CreateOrder(order))

	// Legacy rows may carry uppercase or empty statuses.
	require.NoError(t, database.Model(&model.Order{}).
		Where("id = ?", order.ID).
		Update("status", "CONFIRMED").Error)

	stored, err := svc.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, stored.Status)

	require.NoError(t, database.Model(&model.Order{}).
		Where("id = ?", order.ID).
		Update("status", "").Error)

	stored, err = svc.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, stored.Status)
}

func TestGetOrdersBetween(t *testing.T) {
	svc, database := setupOrderService(t)

	order := newTestOrder()
	require.NoError(t, svc.CreateOrder(order))

	old := newTestOrder()
	require.NoError(t, svc.CreateOrder(old))
	require.NoError(t, database.Model(&model.Order{}).
		Where("id = ?", old.ID).
		Update("created_at", time.Now().AddDate(0, 0, -10)).Error)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)

	orders, err := svc.GetOrdersBetween(start, end)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrderItemsSurviveProductDelete(t *testing.T) {
	svc, database := setupOrderService(t)

	categoryRepo := repository.NewCategoryRepository(database)
	categories := NewCategoryService(categoryRepo)
	products := NewProductService(repository.NewProductRepository(database), categoryRepo)

	category := &model.Category{Name: "Grills"}
	require.NoError(t, categories.CreateCategory(category))

	product := &model.Product{Name: "Adana Kebap", Price: 180, CategoryID: category.ID}
	require.NoError(t, products.CreateProduct(product))

	order := &model.Order{
		CustomerName:  "Ayse Yilmaz",
		CustomerPhone: "+90-555-000-1122",
		Items: model.OrderItems{
			{ProductID: product.ID, ProductName: product.Name, Quantity: 2, Price: product.Price},
		},
		TotalAmount: 360,
	}
	require.NoError(t, svc.CreateOrder(order))

	require.NoError(t, products.DeleteProduct(product.ID))
	_, err := products.GetProductByID(product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)

	stored, err := svc.GetOrderByID(order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, product.ID, stored.Items[0].ProductID)
	assert.Equal(t, "Adana Kebap", stored.Items[0].ProductName)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, 180.0, stored.Items[0].Price)
}
