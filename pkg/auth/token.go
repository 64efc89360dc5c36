package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/razorsharp/storefront-backend/pkg/config"
)

// ParseIdentityToken validates a token minted by the identity provider and
// returns its claims. The backend only verifies; it never issues tokens.
func ParseIdentityToken(cfg config.JWTConfig, tokenString string) (*IdentityClaims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	claims := &IdentityClaims{}
	keyFunc := func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
