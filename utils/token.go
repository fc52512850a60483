package authUtils

import (
	"fmt"
	"os"
	"time"

	"denuncias-be/models"

	"github.com/dgrijalva/jwt-go"
)

// GenerateToken generates a JWT token carrying the caller's identity and
// capability flags. Policy checks downstream rebuild a models.Caller from
// these claims; the token is the only place capability crosses the wire.
func GenerateToken(user *models.User) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret := []byte(secretStr)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":        user.ID.Hex(),
		"is_admin":       user.IsAdmin,
		"email_verified": user.EmailVerified,
		"exp":            time.Now().Add(24 * time.Hour).Unix(), // Token expires in 24 hours
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
