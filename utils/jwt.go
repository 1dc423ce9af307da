package utils

import (
	"errors"
	"time"

	"slotbook/config"
	"slotbook/models"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "slotbook-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT with the caller id as subject and the
// caller role as a custom claim. Token issuance normally lives in the external
// auth service; this helper exists for tooling and tests that need to mint
// tokens against the shared secret.
func GenerateToken(subject string, role models.Role, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractCallerFromToken validates a token string and returns the caller
// identity resolved by the auth service ('sub' and 'role' claims).
func ExtractCallerFromToken(tokenString string) (models.Caller, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return models.Caller{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Caller{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.Caller{}, errors.New("token does not contain a valid 'sub' claim")
	}

	roleStr, ok := claims["role"].(string)
	role := models.Role(roleStr)
	if !ok || !role.Valid() {
		return models.Caller{}, errors.New("token does not contain a valid 'role' claim")
	}

	return models.Caller{ID: sub, Role: role}, nil
}
