package helpers

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not configured")
	}
	return []byte(secret), nil
}

func signToken(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"typ":     tokenType,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

func GenerateAccessToken(userID uuid.UUID) (string, error) {
	return signToken(userID, TokenTypeAccess, accessTokenTTL)
}

func GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return signToken(userID, TokenTypeRefresh, refreshTokenTTL)
}

// ParseToken validates signature and expiry and checks the token was issued
// for the expected use (access vs refresh). It returns the user id baked
// into the claims.
func ParseToken(tokenString, expectedType string) (uuid.UUID, error) {
	secret, err := jwtSecret()
	if err != nil {
		return uuid.Nil, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid token claims")
	}

	if typ, _ := claims["typ"].(string); typ != expectedType {
		return uuid.Nil, fmt.Errorf("wrong token type")
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id in token")
	}
	return userID, nil
}
