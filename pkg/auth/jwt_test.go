package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, claims jwt.Claims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	assert.NoError(t, err)
	return token
}

func TestValidateToken(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name        string
		tokenString string
		setup       func(t *testing.T) string
		expectError bool
		userID      int
		admin       bool
	}{
		{
			name: "Valid Token",
			setup: func(t *testing.T) string {
				return signToken(t, Claims{
					UserID: 123,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
					},
				}, secretKey)
			},
			userID: 123,
		},
		{
			name: "Admin Token",
			setup: func(t *testing.T) string {
				return signToken(t, Claims{
					UserID: 7,
					Admin:  true,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
					},
				}, secretKey)
			},
			userID: 7,
			admin:  true,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func(t *testing.T) string {
				return signToken(t, Claims{
					UserID: 123,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(-time.Hour).Unix(),
					},
				}, secretKey)
			},
			expectError: true,
		},
		{
			name: "Wrong Signing Key",
			setup: func(t *testing.T) string {
				return signToken(t, Claims{
					UserID: 123,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
					},
				}, []byte("other-secret"))
			},
			expectError: true,
		},
		{
			name: "Missing User ID",
			setup: func(t *testing.T) string {
				return signToken(t, Claims{
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
					},
				}, secretKey)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup(t)
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, claims.UserID)
				assert.Equal(t, tt.admin, claims.Admin)
			}
		})
	}
}

func TestSetSecret(t *testing.T) {
	previous := secretKey
	t.Cleanup(func() { secretKey = previous })

	SetSecret("configured-secret")
	jwtService := &JWTService{}

	token := signToken(t, Claims{
		UserID: 42,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}, []byte("configured-secret"))

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)

	stale := signToken(t, Claims{
		UserID: 42,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}, previous)
	_, err = jwtService.ValidateToken(stale)
	assert.Error(t, err)
}
