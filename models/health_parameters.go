package models

import (
	"time"

	"gorm.io/gorm"
)

// Per-user medical and lifestyle profile; one row per user, upserted.
type HealthParameters struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	// Health conditions
	Diabetes           string `gorm:"type:varchar(16);default:None"`   // None|Type 1|Type 2
	Hypertension       string `gorm:"type:varchar(8);default:No"`      // Yes|No
	Cardiovascular     string `gorm:"type:varchar(16);default:Absent"` // Present|Absent
	DigestiveDisorders string `gorm:"type:varchar(16);default:None"`   // None|IBS|Celiac
	FoodAllergies      string `gorm:"type:varchar(16);default:None"`   // None|Dairy|Nuts|Shellfish

	// Body metrics
	Height       float64 // cm
	Weight       float64 // kg
	BMICategory  string  `gorm:"type:varchar(16)"` // Underweight|Normal|Overweight|Obese
	TargetWeight float64

	// Lifestyle
	DietType      string `gorm:"type:varchar(32)"`
	ActivityLevel string `gorm:"type:varchar(32)"`

	LastUpdated time.Time
}
