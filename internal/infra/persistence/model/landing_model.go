package model

// LandingModel mirrors the 'landing' table.
type LandingModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Subtitle    string `gorm:"type:text"`
	Description string `gorm:"type:text"`
	Photo       string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (LandingModel) TableName() string {
	return "landing"
}
