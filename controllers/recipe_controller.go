package controllers

import (
	"net/http"
	"strconv"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"
	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Svc *services.RecipeService
}

func NewRecipeController(svc *services.RecipeService) *RecipeController {
	return &RecipeController{Svc: svc}
}

// GET /recipes?page&limit
func (h *RecipeController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	out, err := h.Svc.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /recipes/:id
func (h *RecipeController) GetByID(c *gin.Context) {
	recipe, err := h.Svc.GetByRecipeID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// GET /recipes/search
func (h *RecipeController) Search(c *gin.Context) {
	params := services.RecipeSearch{
		Query:            c.Query("query"),
		MealType:         c.Query("mealType"),
		DietType:         c.Query("dietType"),
		Vegetarian:       c.Query("vegetarian") == "true",
		Vegan:            c.Query("vegan") == "true",
		GlutenFree:       c.Query("gluten_free") == "true",
		DiabetesFriendly: c.Query("diabetes_friendly") == "true",
		HeartHealthy:     c.Query("heart_healthy") == "true",
		LowSodium:        c.Query("low_sodium") == "true",
	}
	recipes, err := h.Svc.Search(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GET /recipes/nutrition?minProtein&maxCarbs&maxCalories
func (h *RecipeController) ByNutrition(c *gin.Context) {
	minProtein, _ := strconv.ParseFloat(c.Query("minProtein"), 64)
	maxCarbs, _ := strconv.ParseFloat(c.Query("maxCarbs"), 64)
	maxCalories, _ := strconv.ParseFloat(c.Query("maxCalories"), 64)

	recipes, err := h.Svc.ByNutrition(c.Request.Context(), minProtein, maxCarbs, maxCalories)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GET /recipes/meal-type/:mealType
func (h *RecipeController) ByMealType(c *gin.Context) {
	recipes, err := h.Svc.ByMealType(c.Request.Context(), c.Param("mealType"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// POST /recipes
func (h *RecipeController) Create(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.Svc.Create(c.Request.Context(), &recipe); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// PUT /recipes/:id
func (h *RecipeController) Update(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	updated, err := h.Svc.Update(c.Request.Context(), c.Param("id"), &recipe)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /recipes/:id
func (h *RecipeController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}
