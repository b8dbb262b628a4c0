package handlers

import (
	"fmt"
	"strconv"

	"micron-manager/internal/models"

	"github.com/labstack/echo/v4"
)

const (
	// ClaimsContextKey is the context key for the verified identity claims
	ClaimsContextKey = "identity_claims"

	// Pagination headers of collection responses
	HeaderTotal      = "X-WP-Total"
	HeaderTotalPages = "X-WP-TotalPages"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getClaimsFromContext extracts the identity claims set by the auth middleware
func getClaimsFromContext(c echo.Context) (*models.IdentityClaims, error) {
	claims, ok := c.Get(ClaimsContextKey).(*models.IdentityClaims)
	if !ok || claims == nil {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// setPaginationHeaders writes the envelope of a collection response
func setPaginationHeaders(c echo.Context, envelope models.PageEnvelope) {
	header := c.Response().Header()
	header.Set(HeaderTotal, strconv.FormatInt(envelope.TotalCount, 10))
	header.Set(HeaderTotalPages, strconv.FormatInt(envelope.TotalPages, 10))
}
