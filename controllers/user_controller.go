package controllers

import (
	"net/http"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users      *services.UserService
	Dietitians *services.DietitianService
}

func NewUserController(users *services.UserService, dietitians *services.DietitianService) *UserController {
	return &UserController{Users: users, Dietitians: dietitians}
}

// GET /users
func (h *UserController) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/count
func (h *UserController) UserCount(c *gin.Context) {
	count, err := h.Users.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"count": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GET /users/new-this-month
func (h *UserController) NewUsersThisMonth(c *gin.Context) {
	count, err := h.Users.NewThisMonth(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GET /dietitians
func (h *UserController) ListDietitians(c *gin.Context) {
	dietitians, err := h.Dietitians.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dietitians)
}

// GET /dietitians/count
func (h *UserController) DietitianCount(c *gin.Context) {
	count, err := h.Dietitians.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"count": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GET /user/profile — requires auth middleware
func (h *UserController) GetProfile(c *gin.Context) {
	email := c.GetString("email")
	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
	})
}
