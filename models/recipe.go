package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// A catalog entry loaded from the recipe dataset
type Recipe struct {
	gorm.Model
	RecipeID string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name     string `gorm:"not null"`
	MealType string `gorm:"index"`

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Sodium   float64
	Fiber    float64

	Ingredients  datatypes.JSON // array of strings
	Instructions string

	Vegetarian       bool
	Vegan            bool
	GlutenFree       bool
	DiabetesFriendly bool
	HeartHealthy     bool
	LowSodium        bool

	DietType          string
	CookingDifficulty string
	PrepTime          int // minutes
}
