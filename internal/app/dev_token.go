package app

import (
	"crypto/rsa"
	"errors"
	"time"

	"micron-manager/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DevTokenTTL is the lifetime of tokens minted for local development
const DevTokenTTL = 24 * time.Hour

// MintDevToken signs an access token granting capabilities with the locally
// generated identity key. Production never holds a private key.
func MintDevToken(key *rsa.PrivateKey, issuer, userID string, ttl time.Duration, capabilities ...string) (string, error) {
	if key == nil {
		return "", errors.New("no development signing key")
	}

	now := time.Now()
	claims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:       userID,
		Roles:        []string{"shop_manager"},
		Capabilities: capabilities,
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}
