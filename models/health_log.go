package models

import (
	"time"

	"gorm.io/gorm"
)

// Health-log meal slots (distinct set from the plan slots).
const (
	LogBreakfast      = "breakfast"
	LogLunch          = "lunch"
	LogDinner         = "dinner"
	LogAfternoonSnack = "afternoonSnack"
	LogEveningSnack   = "eveningSnack"
)

// LogMeal is one tracked meal inside a daily log entry.
type LogMeal struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NutritionTotals is always derived from the meal slots present on the entry,
// never accepted from a caller.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyLog is one row per (user, calendar day). Date is normalized to UTC
// midnight before every write and lookup; the composite unique index makes
// the at-most-one-entry-per-day invariant a storage guarantee instead of an
// application-side scan over a whole log document.
type DailyLog struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:idx_daily_logs_user_date"`
	Date   time.Time `gorm:"not null;uniqueIndex:idx_daily_logs_user_date"`

	Breakfast      *LogMeal `gorm:"serializer:json"`
	Lunch          *LogMeal `gorm:"serializer:json"`
	Dinner         *LogMeal `gorm:"serializer:json"`
	AfternoonSnack *LogMeal `gorm:"serializer:json"`
	EveningSnack   *LogMeal `gorm:"serializer:json"`

	Totals NutritionTotals `gorm:"embedded;embeddedPrefix:total_"`

	SleepHours      float64
	ExerciseMinutes float64
	ExerciseType    string // cardio|strength|mixed|none
	WaterGlasses    float64
	StressLevel     int // 1-5
	MoodRating      int // 1-5
}
