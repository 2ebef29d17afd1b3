package controllers

import (
	"net/http"
	"strconv"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /dashboard/stats
func (h *DashboardController) GetStats(c *gin.Context) {
	stats, err := h.Svc.DietitianStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /dashboard/user-growth?months=6
func (h *DashboardController) GetUserGrowth(c *gin.Context) {
	months := 6
	if v := c.Query("months"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			months = n
		}
	}
	points, err := h.Svc.UserGrowth(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"growth": points})
}

// GET /dashboard/activity-stats
func (h *DashboardController) GetActivityStats(c *gin.Context) {
	stats, err := h.Svc.ActivityStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /users/active-this-week
func (h *DashboardController) GetActiveUsersThisWeek(c *gin.Context) {
	count, err := h.Svc.ActiveUsersThisWeek(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
