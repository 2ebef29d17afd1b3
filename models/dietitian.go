package models

import (
	"gorm.io/gorm"
)

// Dietitians live in their own table; they review plans but never own one.
type Dietitian struct {
	gorm.Model
	FirstName string `gorm:"not null"`
	LastName  string
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
}
