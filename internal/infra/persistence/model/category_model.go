package model

import "time"

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Photo     string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
