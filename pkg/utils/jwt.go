package utils

import (
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors what the external auth collaborator puts into its tokens.
// This core only consumes {user_id, role}; it never issues tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Read at call time: the secret arrives via .env, which is loaded
		// after this package initializes.
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
