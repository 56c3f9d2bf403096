package auth

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

// Tokens are issued by the platform's identity service; this package only
// validates them to resolve the calling user.
var secretKey = []byte("change-me")

// SetSecret installs the signing key from configuration. Call before the
// server starts accepting requests.
func SetSecret(secret string) {
	secretKey = []byte(secret)
}

type Claims struct {
	UserID int  `json:"user_id"`
	Admin  bool `json:"admin"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
