package services

import (
	"context"
	"log/slog"
	"time"

	"micron-manager/internal/models"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"
)

type requestIDKey struct{}

// ContextWithRequestID attaches the request trace id to ctx for log correlation
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// CustomerLogger provides structured logging for customer listing operations
type CustomerLogger struct {
	logger *slog.Logger
}

// NewCustomerLogger creates a new customer logger
func NewCustomerLogger(logger *slog.Logger) CustomerLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerLogger{
		logger: logger,
	}
}

// LogCustomerListStarted logs the start of a customer listing
func (cl *CustomerLogger) LogCustomerListStarted(ctx context.Context, params models.ListParams) {
	search := ""
	if params.Search != "" {
		search = RedactedValue
	}
	email := ""
	if params.Email != "" {
		email = RedactedValue
	}

	cl.logger.InfoContext(ctx, "customer list started",
		slog.String("event_type", "customer_list_started"),
		slog.String("search", search),
		slog.Any("search_fields", params.SearchFields),
		slog.String("email", email),
		slog.String("role", params.Role),
		slog.Int("page", params.Page),
		slog.Int("per_page", params.PerPage),
		slog.String("orderby", params.OrderBy),
		slog.String("order", params.Order),
		slog.String("context", params.Context),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerListCompleted logs the completion of a customer listing
func (cl *CustomerLogger) LogCustomerListCompleted(ctx context.Context, resultsCount int, total int64, durationMs int64) {
	cl.logger.InfoContext(ctx, "customer list completed",
		slog.String("event_type", "customer_list_completed"),
		slog.Int("results_count", resultsCount),
		slog.Int64("total", total),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerListFailed logs a failed customer listing
func (cl *CustomerLogger) LogCustomerListFailed(ctx context.Context, errorMsg string, durationMs int64) {
	cl.logger.ErrorContext(ctx, "customer list failed",
		slog.String("event_type", "customer_list_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (cl *CustomerLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	cl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogAuthorizationFailure logs authorization failures
func (cl *CustomerLogger) LogAuthorizationFailure(ctx context.Context, operation string, userID string, requiredCapability string) {
	cl.logger.WarnContext(ctx, "authorization failure",
		slog.String("event_type", "authorization_failure"),
		slog.String("operation", operation),
		slog.String("user_id", userID),
		slog.String("required_capability", requiredCapability),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}
