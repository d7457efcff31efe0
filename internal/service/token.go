package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/yallaorder-next/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenRoleUser and TokenRolePartner distinguish the two token audiences.
// User and partner tokens are signed with separate secrets so one can never
// pass for the other.
const (
	TokenRoleUser    = "user"
	TokenRolePartner = "partner"
)

// TokenClaims is the JWT payload for both audiences.
type TokenClaims struct {
	SubjectID uint   `json:"sub_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a token for the given subject.
func IssueToken(cfg config.JWTConfig, subjectID uint, role string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", subjectID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpireHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SecretKey))
}

// ParseToken verifies a token and returns its claims. The role embedded in
// the token must match the expected role.
func ParseToken(cfg config.JWTConfig, tokenString, expectedRole string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	if claims.Role != expectedRole {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
