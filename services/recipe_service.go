package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"

	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipePage struct {
	Recipes     []models.Recipe `json:"recipes"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

func (s *RecipeService) List(ctx context.Context, page, limit int) (*RecipePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	return &RecipePage{
		Recipes:     recipes,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

func (s *RecipeService) GetByRecipeID(ctx context.Context, recipeID string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe %s: %w", recipeID, ErrNotFound)
		}
		return nil, err
	}
	return &recipe, nil
}

type RecipeSearch struct {
	Query            string
	MealType         string
	DietType         string
	Vegetarian       bool
	Vegan            bool
	GlutenFree       bool
	DiabetesFriendly bool
	HeartHealthy     bool
	LowSodium        bool
}

func (s *RecipeService) Search(ctx context.Context, params RecipeSearch) ([]models.Recipe, error) {
	q := s.db.WithContext(ctx).Model(&models.Recipe{})

	if params.Query != "" {
		like := "%" + params.Query + "%"
		// ingredients is a json column; cast before matching so the
		// comparison stays valid on postgres (no LIKE over jsonb)
		q = q.Where("name LIKE ? OR CAST(ingredients AS TEXT) LIKE ?", like, like)
	}
	if params.MealType != "" {
		q = q.Where("meal_type = ?", params.MealType)
	}
	if params.DietType != "" {
		q = q.Where("diet_type = ?", params.DietType)
	}
	if params.Vegetarian {
		q = q.Where("vegetarian = ?", true)
	}
	if params.Vegan {
		q = q.Where("vegan = ?", true)
	}
	if params.GlutenFree {
		q = q.Where("gluten_free = ?", true)
	}
	if params.DiabetesFriendly {
		q = q.Where("diabetes_friendly = ?", true)
	}
	if params.HeartHealthy {
		q = q.Where("heart_healthy = ?", true)
	}
	if params.LowSodium {
		q = q.Where("low_sodium = ?", true)
	}

	var recipes []models.Recipe
	if err := q.Limit(20).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ByNutrition filters on simple per-recipe thresholds; zero means no bound.
func (s *RecipeService) ByNutrition(ctx context.Context, minProtein, maxCarbs, maxCalories float64) ([]models.Recipe, error) {
	q := s.db.WithContext(ctx).Model(&models.Recipe{})
	if minProtein > 0 {
		q = q.Where("protein >= ?", minProtein)
	}
	if maxCarbs > 0 {
		q = q.Where("carbs <= ?", maxCarbs)
	}
	if maxCalories > 0 {
		q = q.Where("calories <= ?", maxCalories)
	}

	var recipes []models.Recipe
	if err := q.Limit(20).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *RecipeService) ByMealType(ctx context.Context, mealType string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Where("meal_type = ?", mealType).
		Limit(10).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *RecipeService) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe.RecipeID == "" {
		return newValidationError("recipe_id", "recipe_id is required")
	}
	if recipe.Name == "" {
		return newValidationError("name", "name is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("recipe_id = ?", recipe.RecipeID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return newValidationError("recipe_id", "recipe_id must be unique")
	}
	return s.db.WithContext(ctx).Create(recipe).Error
}

func (s *RecipeService) Update(ctx context.Context, recipeID string, updates *models.Recipe) (*models.Recipe, error) {
	recipe, err := s.GetByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	updates.ID = recipe.ID
	updates.RecipeID = recipe.RecipeID
	updates.CreatedAt = recipe.CreatedAt
	if err := s.db.WithContext(ctx).Save(updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

func (s *RecipeService) Delete(ctx context.Context, recipeID string) error {
	// hard delete so the recipe_id can be reimported later
	res := s.db.WithContext(ctx).Unscoped().Where("recipe_id = ?", recipeID).Delete(&models.Recipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("recipe %s: %w", recipeID, ErrNotFound)
	}
	return nil
}
