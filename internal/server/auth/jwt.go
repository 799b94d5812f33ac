// Package auth issues and verifies the access tokens handed out by the
// Hello handshake. Tokens carry the caller's ephemeral identity; all
// per-record write rules are checked against the uid inside the token.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
)

// Claims includes the registered claims plus the caller identity.
type Claims struct {
	jwt.RegisteredClaims
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
}

func GenerateToken(id models.Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UID:         id.UID,
		DisplayName: id.DisplayName,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetIdentityFromToken(tokenString string, secretKey []byte) (models.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return models.Identity{}, err
	}

	if !token.Valid {
		return models.Identity{}, common.ErrInvalidToken
	}

	return models.Identity{UID: claims.UID, DisplayName: claims.DisplayName}, nil
}
