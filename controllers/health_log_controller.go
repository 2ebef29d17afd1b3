package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/services"

	"github.com/gin-gonic/gin"
)

type HealthLogController struct {
	Svc *services.HealthLogService
}

func NewHealthLogController(svc *services.HealthLogService) *HealthLogController {
	return &HealthLogController{Svc: svc}
}

// GET /health-logs/:userId?startDate&endDate
func (h *HealthLogController) GetUserLogs(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}

	var start, end *time.Time
	if s, e := c.Query("startDate"), c.Query("endDate"); s != "" && e != "" {
		st, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid startDate"})
			return
		}
		et, err := time.Parse("2006-01-02", e)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid endDate"})
			return
		}
		start, end = &st, &et
	}

	logs, err := h.Svc.ListByRange(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// POST /health-logs/:userId — body is one daily log entry payload
func (h *HealthLogController) AddLogEntry(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	var payload services.LogEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	entry, err := h.Svc.AddOrUpdate(c.Request.Context(), userID, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Health log entry added successfully",
		"log":     entry,
	})
}

// PUT /health-logs/:userId/:date — partial update of an existing entry
func (h *HealthLogController) UpdateLogEntry(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	date, ok := paramDate(c, "date")
	if !ok {
		return
	}
	var payload services.LogEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	entry, err := h.Svc.Update(c.Request.Context(), userID, date, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Health log entry updated successfully",
		"log":     entry,
	})
}

// DELETE /health-logs/:userId/:date
func (h *HealthLogController) DeleteLogEntry(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	date, ok := paramDate(c, "date")
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, date); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Health log entry deleted successfully",
	})
}

// GET /health-logs/recent-patients
func (h *HealthLogController) RecentPatients(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	patients, err := h.Svc.RecentPatients(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}
