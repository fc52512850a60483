package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"denuncias-be/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		// Extracting token from "Bearer <token>" format
		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		if isAdmin, ok := claims["is_admin"].(bool); ok {
			c.Set("is_admin", isAdmin)
		}
		if verified, ok := claims["email_verified"].(bool); ok {
			c.Set("email_verified", verified)
		}

		c.Next()
	}
}

// CallerFrom rebuilds the explicit caller identity from the claims the auth
// middleware stored in the request context.
func CallerFrom(c *gin.Context) (models.Caller, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return models.Caller{}, false
	}
	userIDStr, ok := userIDVal.(string)
	if !ok {
		return models.Caller{}, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return models.Caller{}, false
	}

	caller := models.Caller{UserID: userID}
	if v, exists := c.Get("is_admin"); exists {
		caller.Admin, _ = v.(bool)
	}
	if v, exists := c.Get("email_verified"); exists {
		caller.EmailVerified, _ = v.(bool)
	}
	return caller, true
}
