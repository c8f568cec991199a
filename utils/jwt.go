package utils

import (
	"errors"
	"time"

	"github.com/kayotadakota/cat-exhibition/config"

	"github.com/golang-jwt/jwt/v5"
)

const TokenLifetime = 72 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateToken issues an HS256 token carrying the user id as subject
func GenerateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(TokenLifetime).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(config.JWTSecret))
}

// ParseToken validates a token string and returns the user id it carries
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}
