package repositories

import (
	"context"

	"micron-manager/internal/models"
)

// CustomerRepositoryInterface defines the contract for executing customer listing plans
type CustomerRepositoryInterface interface {
	ListCustomers(ctx context.Context, plan models.QueryPlan) ([]*models.CustomerRecord, int64, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User, roles []string, attributes map[string]string) error
	GetByID(ctx context.Context, id uint64) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}
