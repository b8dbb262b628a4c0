package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	DefaultAvatarBaseURL = "https://secure.gravatar.com/avatar"
	DefaultAvatarSize    = 96
	DefaultAvatarImage   = "mm"
)

// GravatarResolver builds gravatar style avatar URLs from an email address
type GravatarResolver struct {
	BaseURL      string
	Size         int
	DefaultImage string
}

// NewGravatarResolver creates a resolver with the default size and fallback image
func NewGravatarResolver(baseURL string) AvatarResolver {
	if baseURL == "" {
		baseURL = DefaultAvatarBaseURL
	}
	return &GravatarResolver{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		Size:         DefaultAvatarSize,
		DefaultImage: DefaultAvatarImage,
	}
}

// AvatarURL hashes the trimmed, lower-cased email. An empty email still
// yields a URL so clients always get the fallback image.
func (g *GravatarResolver) AvatarURL(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("%s/%s?s=%d&d=%s&r=g", g.BaseURL, hex.EncodeToString(sum[:]), g.Size, g.DefaultImage)
}
