package model

import "time"

// WatchModel mirrors the 'watches' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type WatchModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Brand       string  `gorm:"type:varchar(100);not null;index"`
	Price       float64 `gorm:"not null"`
	Description string  `gorm:"type:text"`
	ImageURL    string  `gorm:"type:varchar(512)"`
	Category    string  `gorm:"type:varchar(100);index"`
	InStock     bool    `gorm:"not null;default:true"`
	Rating      float64
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WatchModel) TableName() string {
	return "watches"
}
