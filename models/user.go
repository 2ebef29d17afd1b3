package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName string `gorm:"not null"`
	LastName  string
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
}
