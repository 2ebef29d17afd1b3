package controllers

import (
	"net/http"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/services"

	"github.com/gin-gonic/gin"
)

type DietPlanController struct {
	Svc *services.DietPlanService
}

func NewDietPlanController(svc *services.DietPlanService) *DietPlanController {
	return &DietPlanController{Svc: svc}
}

type SaveDietPlanRequest struct {
	DietPlan            []services.PlanDayPayload    `json:"dietPlan" binding:"required"`
	NutritionalAnalysis services.NutritionalAnalysis `json:"nutritionalAnalysis"`
	UserCluster         int                          `json:"userCluster"`
}

// POST /diet-plans/save/:userId
func (h *DietPlanController) Save(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	var body SaveDietPlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	planID, err := h.Svc.Save(c.Request.Context(), userID, body.DietPlan, body.NutritionalAnalysis, body.UserCluster)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Diet plan saved successfully",
		"dietPlanId": planID,
	})
}

// POST /diet-plans/confirm/:dietPlanId
func (h *DietPlanController) ConfirmForReview(c *gin.Context) {
	planID, ok := paramUint(c, "dietPlanId")
	if !ok {
		return
	}
	var body struct {
		UserID uint `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	plan, err := h.Svc.ConfirmForReview(c.Request.Context(), planID, body.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Diet plan submitted for review",
		"dietPlan": plan,
	})
}

// GET /diet-plans/current/:userId
func (h *DietPlanController) GetCurrent(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	plan, err := h.Svc.GetCurrent(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "dietPlan": plan})
}

// GET /diet-plans/review
func (h *DietPlanController) ListForReview(c *gin.Context) {
	plans, err := h.Svc.ListForReview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "dietPlans": plans})
}

// GET /diet-plans/:id
func (h *DietPlanController) GetDetails(c *gin.Context) {
	planID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	plan, err := h.Svc.GetDetails(c.Request.Context(), planID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "dietPlan": plan})
}

type SubstituteMealRequest struct {
	DayNumber int    `json:"dayNumber" binding:"required"`
	MealType  string `json:"mealType" binding:"required"`
	RecipeID  string `json:"recipeId" binding:"required"`
}

// PUT /diet-plans/:id/meal — dietitian-only meal substitution
func (h *DietPlanController) SubstituteMeal(c *gin.Context) {
	planID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var body SubstituteMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	plan, err := h.Svc.SubstituteMeal(c.Request.Context(), planID, body.DayNumber, body.MealType, body.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "plan": plan})
}

// PUT /diet-plans/:id/approve — dietitian-only
func (h *DietPlanController) Approve(c *gin.Context) {
	planID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Approve(c.Request.Context(), planID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
