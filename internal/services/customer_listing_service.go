package services

import (
	"context"
	"fmt"
	"time"

	"micron-manager/internal/models"
	"micron-manager/internal/repositories"
)

// CustomerListingService runs the listing pipeline: plan, execute, project, paginate
type CustomerListingService struct {
	customerRepo repositories.CustomerRepositoryInterface
	projector    CustomerProjectorInterface
	logger       CustomerLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewCustomerListingService creates a new customer listing service
func NewCustomerListingService(
	customerRepo repositories.CustomerRepositoryInterface,
	projector CustomerProjectorInterface,
	logger CustomerLoggerInterface,
	metrics MetricsRecorderInterface,
) CustomerListingServiceInterface {
	return &CustomerListingService{
		customerRepo: customerRepo,
		projector:    projector,
		logger:       logger,
		metrics:      metrics,
	}
}

// ListCustomers returns the page of customers described by params. A store
// failure or a cancelled context yields an error and no partial result.
func (s *CustomerListingService) ListCustomers(ctx context.Context, params models.ListParams) (*models.CustomerPage, error) {
	start := time.Now()
	s.logger.LogCustomerListStarted(ctx, params)

	plan := BuildPlan(params)

	records, total, err := s.customerRepo.ListCustomers(ctx, plan)
	if err != nil {
		duration := time.Since(start)
		s.logger.LogCustomerListFailed(ctx, err.Error(), duration.Milliseconds())
		s.metrics.IncrementCounter(MetricCustomerListRequest, map[string]string{"status": "failed"})
		s.metrics.RecordProcessingTime(MetricCustomerListDuration, duration)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]models.CustomerView, 0, len(records))
	for _, record := range records {
		customers = append(customers, s.projector.Project(record, params.Context))
	}

	result := &models.CustomerPage{
		Customers: customers,
		Envelope:  Envelope(total, plan.PageSize),
	}

	duration := time.Since(start)
	s.logger.LogCustomerListCompleted(ctx, len(customers), total, duration.Milliseconds())
	s.metrics.IncrementCounter(MetricCustomerListRequest, map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime(MetricCustomerListDuration, duration)
	s.metrics.RecordGauge(MetricCustomerListResults, float64(len(customers)), nil)

	return result, nil
}
