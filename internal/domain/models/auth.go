package models

import "github.com/golang-jwt/jwt/v5"

// AuthClaims represents the JWT claims issued by the external auth
// provider. Only the subject is load-bearing here: it is the opaque
// current-user identity the profile store is keyed by.
type AuthClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email"`
	Role                 string `json:"role"` // "authenticated" or "anon"
	IsAnonymous          bool   `json:"is_anonymous"`
}

// GetUserID returns the user ID from the JWT subject claim.
// This is the primary identifier for the authenticated user.
func (c *AuthClaims) GetUserID() string {
	return c.Subject
}
