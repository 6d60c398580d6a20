package model

import "time"

// CustomerModel mirrors the 'customers' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CustomerModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Phone        string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:text"`
	Role         string `gorm:"type:varchar(20);not null;default:customer"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	LastLogin    *time.Time

	Orders []OrderModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
