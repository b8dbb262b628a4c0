package models

import "github.com/golang-jwt/jwt/v5"

// Capabilities granted by the identity provider
const (
	CapabilityListUsers = "list_users"
)

// IdentityClaims are the claims of an access token issued by the identity provider
type IdentityClaims struct {
	jwt.RegisteredClaims
	UserID       string   `json:"user_id"`
	Email        string   `json:"email,omitempty"`
	Roles        []string `json:"roles,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// Can reports whether the token grants capability
func (c *IdentityClaims) Can(capability string) bool {
	if c == nil {
		return false
	}
	for _, granted := range c.Capabilities {
		if granted == capability {
			return true
		}
	}
	return false
}
