package model

import "time"

// NewsModel mirrors the 'news' table.
type NewsModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Author    string `gorm:"type:varchar(255);not null"`
	Title     string `gorm:"type:varchar(255);not null"`
	Subtitle  string `gorm:"type:text"`
	Body      string `gorm:"column:post;type:text"`
	Photo     string `gorm:"type:text"`
	Visible   bool   `gorm:"default:true"`
	Movie     bool   `gorm:"default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsModel) TableName() string {
	return "news"
}
