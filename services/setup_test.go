package services

import (
	"testing"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a throwaway in-memory database with the full schema.
// The pool is pinned to a single connection because every :memory: sqlite
// connection is its own database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Dietitian{},
		&models.Recipe{},
		&models.DietPlan{},
		&models.PlanDay{},
		&models.PlanMeal{},
		&models.DailyLog{},
		&models.HealthParameters{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "hashed",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return &user
}

func createTestRecipe(t *testing.T, db *gorm.DB, recipeID, name string, calories float64) *models.Recipe {
	t.Helper()
	recipe := models.Recipe{
		RecipeID:    recipeID,
		Name:        name,
		MealType:    "lunch",
		Calories:    calories,
		Protein:     20,
		Carbs:       30,
		Fat:         10,
		Ingredients: []byte(`["rice","beans"]`),
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("create recipe %s: %v", recipeID, err)
	}
	return &recipe
}
