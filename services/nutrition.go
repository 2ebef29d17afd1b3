package services

import (
	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"
)

// MealFacts is the numeric slice of a meal used for aggregation. Absent
// fields are zero, never an error.
type MealFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sodium   float64 `json:"sodium"`
	Fiber    float64 `json:"fiber"`
}

// SumNutrition adds up whatever numbers the meals carry.
func SumNutrition(meals []MealFacts) MealFacts {
	var out MealFacts
	for _, m := range meals {
		out.Calories += m.Calories
		out.Protein += m.Protein
		out.Carbs += m.Carbs
		out.Fat += m.Fat
		out.Sodium += m.Sodium
		out.Fiber += m.Fiber
	}
	return out
}

// DailyTotals sums the four macro fields across the five fixed health-log
// slots. Nil slots are skipped.
func DailyTotals(slots ...*models.LogMeal) models.NutritionTotals {
	var t models.NutritionTotals
	for _, s := range slots {
		if s == nil {
			continue
		}
		t.Calories += s.Calories
		t.Protein += s.Protein
		t.Carbs += s.Carbs
		t.Fat += s.Fat
	}
	return t
}

// RecomputeAggregates would rebuild a plan's stored aggregates from its
// current meal mix. Substituting a meal leaves plan_totals stale on purpose;
// see ErrAggregatesExternal.
func RecomputeAggregates(_ *models.DietPlan) error {
	return ErrAggregatesExternal
}
