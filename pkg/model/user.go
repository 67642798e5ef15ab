package model

import (
	"gorm.io/gorm"
)

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
}
