package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"
	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DietPlanService struct {
	db  *gorm.DB
	hub *PlanEventHub // nil disables event fan-out
}

func NewDietPlanService(db *gorm.DB, hub *PlanEventHub) *DietPlanService {
	return &DietPlanService{db: db, hub: hub}
}

// PlanMealPayload is one meal as the recommender produced it. Numbers and the
// recipe reference are copied verbatim into the stored snapshot.
type PlanMealPayload struct {
	RecipeID     string   `json:"recipeId"`
	Name         string   `json:"name"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fat          float64  `json:"fat"`
	Sodium       float64  `json:"sodium"`
	Fiber        float64  `json:"fiber"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// PlanDayPayload is one day of the candidate plan. Callers submit days as an
// ordered array; the 1-based day ordinal is assigned positionally, so a
// day-keyed map (with its ambient iteration order) is deliberately not accepted.
type PlanDayPayload struct {
	Label string                     `json:"label"`
	Meals map[string]PlanMealPayload `json:"meals"`
}

// NutritionalAnalysis arrives pre-computed from the recommender and is stored
// as-is; recomputing it server-side is out of scope (see RecomputeAggregates).
type NutritionalAnalysis struct {
	AvgNutrition     json.RawMessage `json:"avg_nutrition"`
	MacroPercentages json.RawMessage `json:"macro_percentages"`
	VarietyMetrics   json.RawMessage `json:"variety_metrics"`
	MealCoverage     float64         `json:"meal_coverage"`
}

// Save upserts the single plan for a user: a second save overwrites the first
// in place and resets status to review. Returns the stored plan's id.
//
// Note: the upsert is a read-modify-write at document granularity; two
// concurrent saves for the same user are last-writer-wins. A user edits their
// own plan from one session, so this is not guarded further.
func (s *DietPlanService) Save(ctx context.Context, userID uint, days []PlanDayPayload, analysis NutritionalAnalysis, cluster int) (uint, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("user: %w", ErrNotFound)
		}
		return 0, err
	}

	planDays := make([]models.PlanDay, 0, len(days))
	for i, dp := range days {
		day := models.PlanDay{
			DayNumber: i + 1,
			DayLabel:  dp.Label,
		}
		for slot, mp := range dp.Meals {
			if !models.IsPlanMealSlot(slot) {
				return 0, newValidationError("meals", fmt.Sprintf("unknown meal slot %q on day %d", slot, i+1))
			}
			if mp.Name == "" {
				return 0, newValidationError("name", fmt.Sprintf("meal name required for %s on day %d", slot, i+1))
			}
			day.Meals = append(day.Meals, snapshotFromPayload(slot, mp))
		}
		planDays = append(planDays, day)
	}

	var planID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan models.DietPlan
		err := tx.Where("user_id = ?", userID).First(&plan).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			plan = models.DietPlan{UserID: userID}
		case err != nil:
			return err
		default:
			// replace the old day tree wholesale, same as re-logging a meal
			var dayIDs []uint
			if err := tx.Model(&models.PlanDay{}).
				Where("diet_plan_id = ?", plan.ID).
				Pluck("id", &dayIDs).Error; err != nil {
				return err
			}
			if len(dayIDs) > 0 {
				if err := tx.Unscoped().Where("plan_day_id IN ?", dayIDs).Delete(&models.PlanMeal{}).Error; err != nil {
					return err
				}
				if err := tx.Unscoped().Where("diet_plan_id = ?", plan.ID).Delete(&models.PlanDay{}).Error; err != nil {
					return err
				}
			}
		}

		plan.PlanTotals = datatypes.JSON(analysis.AvgNutrition)
		plan.MacroPercentages = datatypes.JSON(analysis.MacroPercentages)
		plan.VarietyMetrics = datatypes.JSON(analysis.VarietyMetrics)
		plan.MealCoverage = analysis.MealCoverage
		plan.UserCluster = cluster
		plan.Status = models.PlanReview

		if err := tx.Save(&plan).Error; err != nil {
			return err
		}
		for i := range planDays {
			planDays[i].DietPlanID = plan.ID
		}
		if len(planDays) > 0 {
			if err := tx.Create(&planDays).Error; err != nil {
				return err
			}
		}
		planID = plan.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return planID, nil
}

// ConfirmForReview re-submits a plan for review on behalf of its owner.
// Save already leaves plans in review, so this is idempotent; it exists to
// support the two-phase submit flow from the client.
func (s *DietPlanService) ConfirmForReview(ctx context.Context, planID, requestingUserID uint) (*PlanView, error) {
	var plan models.DietPlan
	if err := s.db.WithContext(ctx).First(&plan, planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("diet plan: %w", ErrNotFound)
		}
		return nil, err
	}
	if plan.UserID != requestingUserID {
		return nil, fmt.Errorf("diet plan belongs to another user: %w", ErrForbidden)
	}

	plan.Status = models.PlanReview
	if err := s.db.WithContext(ctx).Save(&plan).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(PlanEvent{
			Kind: "plan.submitted", PlanID: plan.ID, UserID: plan.UserID,
			Status: plan.Status, At: time.Now().UTC(),
		})
	}
	return s.GetDetails(ctx, plan.ID)
}

// GetCurrent returns the most recently updated plan for a user, with recipe
// references resolved for display.
func (s *DietPlanService) GetCurrent(ctx context.Context, userID uint) (*PlanView, error) {
	var plan models.DietPlan
	err := s.planQuery(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("diet plan: %w", ErrNotFound)
		}
		return nil, err
	}
	return s.buildView(ctx, &plan)
}

// GetDetails returns one plan fully resolved.
func (s *DietPlanService) GetDetails(ctx context.Context, planID uint) (*PlanView, error) {
	var plan models.DietPlan
	if err := s.planQuery(ctx).First(&plan, planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("diet plan: %w", ErrNotFound)
		}
		return nil, err
	}
	return s.buildView(ctx, &plan)
}

// ReviewPlan is a plan awaiting review with its owner's summary attached.
type ReviewPlan struct {
	PlanView
	Owner OwnerSummary `json:"user"`
}

type OwnerSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ListForReview returns every plan currently in review.
func (s *DietPlanService) ListForReview(ctx context.Context) ([]ReviewPlan, error) {
	var plans []models.DietPlan
	if err := s.planQuery(ctx).
		Where("status = ?", models.PlanReview).
		Order("updated_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}

	ownerIDs := make([]uint, 0, len(plans))
	for _, p := range plans {
		ownerIDs = append(ownerIDs, p.UserID)
	}
	owners := map[uint]OwnerSummary{}
	if len(ownerIDs) > 0 {
		var users []models.User
		if err := s.db.WithContext(ctx).Where("id IN ?", ownerIDs).Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			owners[u.ID] = OwnerSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
		}
	}

	out := make([]ReviewPlan, 0, len(plans))
	for i := range plans {
		view, err := s.buildView(ctx, &plans[i])
		if err != nil {
			return nil, err
		}
		out = append(out, ReviewPlan{PlanView: *view, Owner: owners[plans[i].UserID]})
	}
	return out, nil
}

// SubstituteMeal overwrites the meal at (dayNumber, slot) with a fresh
// snapshot of the recipe's current catalog facts. The plan's stored
// aggregates are NOT recomputed; they stay stale until the plan is
// regenerated upstream (see RecomputeAggregates).
func (s *DietPlanService) SubstituteMeal(ctx context.Context, planID uint, dayNumber int, slot, recipeRef string) (*PlanView, error) {
	if !models.IsPlanMealSlot(slot) {
		return nil, newValidationError("mealType", fmt.Sprintf("unknown meal slot %q", slot))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan models.DietPlan
		if err := tx.First(&plan, planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("diet plan: %w", ErrNotFound)
			}
			return err
		}

		var day models.PlanDay
		if err := tx.Where("diet_plan_id = ? AND day_number = ?", plan.ID, dayNumber).
			First(&day).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("day %d: %w", dayNumber, ErrNotFound)
			}
			return err
		}

		var recipe models.Recipe
		if err := tx.Where("recipe_id = ?", recipeRef).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("recipe %s: %w", recipeRef, ErrNotFound)
			}
			return err
		}

		var meal models.PlanMeal
		err := tx.Where("plan_day_id = ? AND slot = ?", day.ID, slot).First(&meal).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		meal.PlanDayID = day.ID
		meal.Slot = slot
		applyRecipeSnapshot(&meal, &recipe)
		if err := tx.Save(&meal).Error; err != nil {
			return err
		}

		return tx.Model(&plan).Update("updated_at", time.Now().UTC()).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetDetails(ctx, planID)
}

// Approve finalizes a plan. There is no review-state precondition and
// approving an already approved plan is a no-op; the route is dietitian-only
// so no further ownership check applies.
func (s *DietPlanService) Approve(ctx context.Context, planID uint) error {
	var plan models.DietPlan
	if err := s.db.WithContext(ctx).First(&plan, planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("diet plan: %w", ErrNotFound)
		}
		return err
	}

	alreadyApproved := plan.Status == models.PlanApproved
	plan.Status = models.PlanApproved
	if err := s.db.WithContext(ctx).Save(&plan).Error; err != nil {
		return err
	}
	if alreadyApproved {
		return nil
	}

	if s.hub != nil {
		s.hub.Broadcast(PlanEvent{
			Kind: "plan.approved", PlanID: plan.ID, UserID: plan.UserID,
			Status: plan.Status, At: time.Now().UTC(),
		})
	}

	// best effort: the approval itself must not fail on mail trouble
	var owner models.User
	if err := s.db.WithContext(ctx).First(&owner, plan.UserID).Error; err == nil {
		_ = utils.SendPlanApprovedEmail(owner.Email, owner.FirstName)
	}
	return nil
}

// ---- views ----

// MealView is a stored meal snapshot plus, when the reference still resolves,
// the live catalog entry for display. The snapshot numbers stay authoritative.
type MealView struct {
	RecipeRef    string         `json:"recipeId,omitempty"`
	Recipe       *models.Recipe `json:"recipe,omitempty"`
	Name         string         `json:"name"`
	Calories     float64        `json:"calories"`
	Protein      float64        `json:"protein"`
	Carbs        float64        `json:"carbs"`
	Fat          float64        `json:"fat"`
	Sodium       float64        `json:"sodium"`
	Fiber        float64        `json:"fiber"`
	Ingredients  []string       `json:"ingredients"`
	Instructions string         `json:"instructions"`
}

// DayView carries one optional meal per fixed slot, mirroring the stored shape.
type DayView struct {
	DayNumber      int       `json:"day_number"`
	DayLabel       string    `json:"day_label"`
	Breakfast      *MealView `json:"Breakfast,omitempty"`
	Lunch          *MealView `json:"Lunch,omitempty"`
	Dinner         *MealView `json:"Dinner,omitempty"`
	Brunch         *MealView `json:"Brunch,omitempty"`
	MorningSnack   *MealView `json:"MorningSnack,omitempty"`
	AfternoonSnack *MealView `json:"AfternoonSnack,omitempty"`
}

func (d *DayView) setSlot(slot string, m *MealView) {
	switch slot {
	case models.SlotBreakfast:
		d.Breakfast = m
	case models.SlotLunch:
		d.Lunch = m
	case models.SlotDinner:
		d.Dinner = m
	case models.SlotBrunch:
		d.Brunch = m
	case models.SlotMorningSnack:
		d.MorningSnack = m
	case models.SlotAfternoonSnack:
		d.AfternoonSnack = m
	}
}

// Slot returns the meal at a named slot, nil when empty.
func (d *DayView) Slot(slot string) *MealView {
	switch slot {
	case models.SlotBreakfast:
		return d.Breakfast
	case models.SlotLunch:
		return d.Lunch
	case models.SlotDinner:
		return d.Dinner
	case models.SlotBrunch:
		return d.Brunch
	case models.SlotMorningSnack:
		return d.MorningSnack
	case models.SlotAfternoonSnack:
		return d.AfternoonSnack
	}
	return nil
}

type PlanView struct {
	ID               uint              `json:"id"`
	UserID           uint              `json:"userId"`
	Days             []DayView         `json:"days"`
	PlanTotals       json.RawMessage   `json:"plan_totals,omitempty"`
	MacroPercentages json.RawMessage   `json:"macro_percentages,omitempty"`
	VarietyMetrics   json.RawMessage   `json:"variety_metrics,omitempty"`
	MealCoverage     float64           `json:"meal_coverage"`
	UserCluster      int               `json:"user_cluster"`
	Status           models.PlanStatus `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func (s *DietPlanService) planQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("plan_days.day_number ASC")
		}).
		Preload("Days.Meals")
}

func (s *DietPlanService) buildView(ctx context.Context, plan *models.DietPlan) (*PlanView, error) {
	// one catalog fetch for every referenced recipe in the plan
	refSet := map[string]struct{}{}
	for _, d := range plan.Days {
		for _, m := range d.Meals {
			if m.RecipeRef != "" {
				refSet[m.RecipeRef] = struct{}{}
			}
		}
	}
	recipes := map[string]*models.Recipe{}
	if len(refSet) > 0 {
		refs := make([]string, 0, len(refSet))
		for r := range refSet {
			refs = append(refs, r)
		}
		var rows []models.Recipe
		if err := s.db.WithContext(ctx).Where("recipe_id IN ?", refs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for i := range rows {
			recipes[rows[i].RecipeID] = &rows[i]
		}
	}

	view := &PlanView{
		ID:               plan.ID,
		UserID:           plan.UserID,
		PlanTotals:       json.RawMessage(plan.PlanTotals),
		MacroPercentages: json.RawMessage(plan.MacroPercentages),
		VarietyMetrics:   json.RawMessage(plan.VarietyMetrics),
		MealCoverage:     plan.MealCoverage,
		UserCluster:      plan.UserCluster,
		Status:           plan.Status,
		CreatedAt:        plan.CreatedAt,
		UpdatedAt:        plan.UpdatedAt,
	}
	for _, d := range plan.Days {
		dv := DayView{DayNumber: d.DayNumber, DayLabel: d.DayLabel}
		for i := range d.Meals {
			m := &d.Meals[i]
			mv := &MealView{
				RecipeRef:    m.RecipeRef,
				Recipe:       recipes[m.RecipeRef],
				Name:         m.Name,
				Calories:     m.Calories,
				Protein:      m.Protein,
				Carbs:        m.Carbs,
				Fat:          m.Fat,
				Sodium:       m.Sodium,
				Fiber:        m.Fiber,
				Instructions: m.Instructions,
			}
			if len(m.Ingredients) > 0 {
				if err := json.Unmarshal(m.Ingredients, &mv.Ingredients); err != nil {
					return nil, fmt.Errorf("decode ingredients for %s on day %d of plan %d: %w", m.Slot, d.DayNumber, plan.ID, err)
				}
			}
			dv.setSlot(m.Slot, mv)
		}
		view.Days = append(view.Days, dv)
	}
	return view, nil
}

// ---- snapshots ----

func snapshotFromPayload(slot string, mp PlanMealPayload) models.PlanMeal {
	ingredients := mp.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	raw, _ := json.Marshal(ingredients)
	return models.PlanMeal{
		Slot:         slot,
		RecipeRef:    mp.RecipeID,
		Name:         mp.Name,
		Calories:     mp.Calories,
		Protein:      mp.Protein,
		Carbs:        mp.Carbs,
		Fat:          mp.Fat,
		Sodium:       mp.Sodium,
		Fiber:        mp.Fiber,
		Ingredients:  datatypes.JSON(raw),
		Instructions: mp.Instructions,
	}
}

func applyRecipeSnapshot(meal *models.PlanMeal, recipe *models.Recipe) {
	meal.RecipeRef = recipe.RecipeID
	meal.Name = recipe.Name
	meal.Calories = recipe.Calories
	meal.Protein = recipe.Protein
	meal.Carbs = recipe.Carbs
	meal.Fat = recipe.Fat
	meal.Sodium = recipe.Sodium
	meal.Fiber = recipe.Fiber
	meal.Ingredients = recipe.Ingredients
	meal.Instructions = recipe.Instructions
}
