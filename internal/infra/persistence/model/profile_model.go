package model

import "time"

// ProfileModel mirrors the 'profiles' table holding game profile cards.
type ProfileModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Photo       string `gorm:"type:text"`
	Description string `gorm:"type:text"`
	Color       string `gorm:"type:varchar(64)"`
	PlayTime    string `gorm:"column:play_time;type:varchar(64)"`
	Additional  string `gorm:"type:text"`
	CanWin      string `gorm:"type:text"`
	Position    int
	Active      bool `gorm:"default:true"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
