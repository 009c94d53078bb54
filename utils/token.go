package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Access tokens are short-lived and stateless; there is no refresh or
// revocation mechanism.
const AccessTokenTTL = 15 * time.Minute

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the JWT payload: the user id as subject plus a fixed
// token-type marker.
type AccessClaims struct {
	Typ string `json:"typ"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 access token for the given user. The issuer
// claim is set only when configured.
func GenerateToken(userID uint, secret, issuer string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Typ: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature and expiry and returns the claims. Only
// HS256 is accepted, so an alg-substitution token fails before verification.
func ParseToken(tokenString, secret string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
