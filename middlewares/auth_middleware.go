package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/config"
	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "server misconfigured: JWT_SECRET not set"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid claims"})
			return
		}

		email, _ := claims["email"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "email claim missing"})
			return
		}
		role, _ := claims["role"].(string)
		if role == "" {
			role = "user"
		}

		switch role {
		case "dietitian":
			var d models.Dietitian
			if err := config.DB.Where("email = ?", email).First(&d).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "dietitian not found"})
				return
			}
			c.Set("dietitianID", d.ID)
		default:
			var user models.User
			if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user not found"})
				return
			}
			c.Set("userID", user.ID)
		}

		c.Set("email", email)
		c.Set("role", role)
		c.Next()
	}
}
