package services

import (
	"context"
	"time"

	"micron-manager/internal/models"
)

// CustomerListingServiceInterface lists customers for the collection endpoint
type CustomerListingServiceInterface interface {
	ListCustomers(ctx context.Context, params models.ListParams) (*models.CustomerPage, error)
}

// CustomerProjectorInterface renders customer records into their public representation
type CustomerProjectorInterface interface {
	Project(record *models.CustomerRecord, context string) models.CustomerView
	CollectionURL() string
	ItemURL(id uint64) string
}

// AvatarResolver maps an email address to an avatar image URL
type AvatarResolver interface {
	AvatarURL(email string) string
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TokenVerifierInterface verifies access tokens issued by the identity provider
type TokenVerifierInterface interface {
	ValidateAccessToken(tokenString string) (*models.IdentityClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type CustomerLoggerInterface interface {
	LogCustomerListStarted(ctx context.Context, params models.ListParams)
	LogCustomerListCompleted(ctx context.Context, resultsCount int, total int64, durationMs int64)
	LogCustomerListFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogAuthorizationFailure(ctx context.Context, operation string, userID string, requiredCapability string)
}
