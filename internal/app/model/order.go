package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a member of the closed order status set.
// Transition requests are checked for membership only; adjacency is not
// enforced.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// NormalizeOrderStatus maps a stored status value to its canonical lower-case
// form at the serialization boundary. An empty value renders as pending so
// that rows predating the status column never surface as null.
func NormalizeOrderStatus(s OrderStatus) OrderStatus {
	normalized := OrderStatus(strings.ToLower(strings.TrimSpace(string(s))))
	if normalized == "" {
		return OrderStatusPending
	}
	return normalized
}

// OrderItemSnapshot captures a product line at order time. It is a copy, not
// a reference: later catalog edits or deletions never alter it.
type OrderItemSnapshot struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderItems is stored as a JSON column.
type OrderItems []OrderItemSnapshot

func (i OrderItems) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *OrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	case nil:
		*i = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for order items: %T", value)
	}
}

type Order struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	CustomerName    string      `gorm:"type:varchar(200);not null" json:"customer_name"`
	CustomerPhone   string      `gorm:"type:varchar(20);not null" json:"customer_phone"`
	CustomerAddress string      `gorm:"type:text" json:"customer_address,omitempty"`
	Items           OrderItems  `gorm:"type:json;not null" json:"items"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	Notes           string      `gorm:"type:text" json:"notes,omitempty"`
	Status          OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// Normalize applies the serialization contract before the order leaves the
// service layer.
func (o *Order) Normalize() {
	o.Status = NormalizeOrderStatus(o.Status)
}
