package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/iamasit07/four-in-a-row-bot/pkg/uid"
)

// ClientClaims identifies a program allowed to ask the bot for moves
type ClientClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// GenerateClientToken creates an HS256 token for clientID valid for ttl
func GenerateClientToken(secret, clientID string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	if clientID == "" {
		return "", errors.New("client id is empty")
	}

	tokenID, err := uid.GenerateTokenID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &ClientClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   clientID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateClientToken validates a client token and returns the claims
func ValidateClientToken(secret, tokenString string) (*ClientClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClientClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*ClientClaims); ok && token.Valid && claims.ClientID != "" {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
