package controllers

import (
	"net/http"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/services"

	"github.com/gin-gonic/gin"
)

type HealthParamsController struct {
	Svc *services.HealthParamsService
}

func NewHealthParamsController(svc *services.HealthParamsService) *HealthParamsController {
	return &HealthParamsController{Svc: svc}
}

// GET /health-parameters/:userId
func (h *HealthParamsController) Get(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	hp, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hp)
}

// POST /health-parameters/:userId — create or update
func (h *HealthParamsController) Upsert(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	var input services.HealthParamsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	hp, err := h.Svc.Upsert(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hp)
}

// DELETE /health-parameters/:userId
func (h *HealthParamsController) Delete(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health parameters deleted successfully"})
}
