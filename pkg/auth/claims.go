package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IdentityClaims represents the token the external identity provider issues.
// The registered subject carries the profile id; the provider adds the email
// as a private claim.
type IdentityClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ProfileID extracts the profile id from the token subject.
func (c *IdentityClaims) ProfileID() (uuid.UUID, error) {
	if c == nil || c.Subject == "" {
		return uuid.Nil, fmt.Errorf("token subject is empty")
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("token subject is not a uuid: %w", err)
	}
	return id, nil
}
