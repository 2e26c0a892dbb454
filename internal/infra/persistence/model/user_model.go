// Package model holds the GORM persistence models.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	IdentifierHash string    `gorm:"type:char(64);uniqueIndex:users_identifier_hash_key;not null"`
	SecretHash     string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
