// Package model contains the GORM persistence models mirroring the database
// tables. Identifiers are generated strings (UUIDs), assigned by the
// application rather than the database so the seeded admin can keep its
// well-known id.
package model

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           string `gorm:"type:varchar(64);primaryKey"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
