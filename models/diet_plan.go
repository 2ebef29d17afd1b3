package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanStatus is the closed set of lifecycle states for a diet plan.
// A plan only ever moves review -> approved; a fresh save resets it to review.
type PlanStatus string

const (
	PlanReview   PlanStatus = "review"
	PlanApproved PlanStatus = "approved"
)

// Meal slots a plan day can carry. The slot column only ever holds one of these.
const (
	SlotBreakfast      = "Breakfast"
	SlotLunch          = "Lunch"
	SlotDinner         = "Dinner"
	SlotBrunch         = "Brunch"
	SlotMorningSnack   = "MorningSnack"
	SlotAfternoonSnack = "AfternoonSnack"
)

var PlanMealSlots = []string{
	SlotBreakfast, SlotLunch, SlotDinner,
	SlotBrunch, SlotMorningSnack, SlotAfternoonSnack,
}

func IsPlanMealSlot(slot string) bool {
	for _, s := range PlanMealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// One generated diet plan per user. The aggregate columns arrive pre-computed
// from the recommender and are stored verbatim; this service never recomputes them.
type DietPlan struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex;not null"`
	Days   []PlanDay `gorm:"constraint:OnDelete:CASCADE"`

	PlanTotals       datatypes.JSON
	MacroPercentages datatypes.JSON
	VarietyMetrics   datatypes.JSON
	MealCoverage     float64
	UserCluster      int

	Status PlanStatus `gorm:"type:varchar(16);not null;default:review"`
}

type PlanDay struct {
	gorm.Model
	DietPlanID uint       `gorm:"index;not null"`
	DayNumber  int        `gorm:"not null"` // 1-based ordinal
	DayLabel   string     // e.g. "Monday"
	Meals      []PlanMeal `gorm:"constraint:OnDelete:CASCADE"`
}

// PlanMeal is a value snapshot of a recipe's nutrition at the moment it was
// chosen. RecipeRef is a non-authoritative back-reference for traceability;
// the copied numbers stay authoritative even if the catalog entry changes later.
type PlanMeal struct {
	gorm.Model
	PlanDayID uint   `gorm:"index;not null"`
	Slot      string `gorm:"type:varchar(32);not null"`

	RecipeRef string `gorm:"type:varchar(64)"`
	Name      string
	Calories  float64
	Protein   float64
	Carbs     float64
	Fat       float64
	Sodium    float64
	Fiber     float64

	Ingredients  datatypes.JSON
	Instructions string
}
