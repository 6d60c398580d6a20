package model

import "time"

// OrderModel mirrors the 'orders' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type OrderModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64   `gorm:"not null;index"`
	TotalAmount     float64 `gorm:"not null"`
	Status          string  `gorm:"type:varchar(20);not null;default:pending;index"`
	PaymentIntentID string  `gorm:"type:varchar(255)"`
	CreatedAt       time.Time

	Items    []OrderItemModel `gorm:"foreignKey:OrderID"`
	Customer *CustomerModel   `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Price is the unit price
// at the time of purchase, denormalized from the watch.
type OrderItemModel struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	OrderID  int64   `gorm:"not null;index"`
	WatchID  int64   `gorm:"not null"`
	Quantity int     `gorm:"not null"`
	Price    float64 `gorm:"not null"`

	Watch *WatchModel `gorm:"foreignKey:WatchID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
