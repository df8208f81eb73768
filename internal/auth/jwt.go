package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/grantdesk/grantdesk/internal/models"
)

var jwtSecret string

// Tokens expire after one hour; expiry is the only invalidation mechanism.
const tokenTTL = time.Hour

func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return nil
}

// Claims is the identity carried by every issued token.
type Claims struct {
	UserID            string `json:"user_id"`
	Username          string `json:"username"`
	ClubOrAssociation string `json:"club_or_association"`
	jwt.RegisteredClaims
}

func GenerateJWT(user models.User) (string, error) {
	claims := &Claims{
		UserID:            user.UserID,
		Username:          user.Username,
		ClubOrAssociation: user.ClubOrAssociation,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	return claims, nil
}
