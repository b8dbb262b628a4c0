package repositories

import (
	"context"
	"fmt"

	"micron-manager/internal/models"

	"gorm.io/gorm"
)

// CustomerRepository executes customer listing plans against the user store
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// ListCustomers returns one page of records matching the plan and the total
// number of matches across all pages. On error no records are returned.
func (r *CustomerRepository) ListCustomers(ctx context.Context, plan models.QueryPlan) ([]*models.CustomerRecord, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	where, args, err := compilePredicate(plan.Where())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to compile customer filter: %w", err)
	}

	order, err := orderClause(plan.OrderBy, plan.Order)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where(where, args...).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var users []models.User
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where(where, args...).
		Order(order).
		Offset(plan.Offset).
		Limit(plan.Limit).
		Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	records, err := r.hydrate(ctx, users)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// hydrate loads roles and attributes for a page of users in two batched queries
func (r *CustomerRepository) hydrate(ctx context.Context, users []models.User) ([]*models.CustomerRecord, error) {
	records := make([]*models.CustomerRecord, 0, len(users))
	if len(users) == 0 {
		return records, nil
	}

	ids := make([]uint64, 0, len(users))
	byID := make(map[uint64]*models.CustomerRecord, len(users))
	for _, u := range users {
		record := &models.CustomerRecord{
			ID:          u.ID,
			Email:       u.UserEmail,
			Login:       u.UserLogin,
			Nicename:    u.UserNicename,
			DisplayName: u.DisplayName,
			Registered:  u.UserRegistered,
			Roles:       []string{},
			Attributes:  map[string]string{},
		}
		ids = append(ids, u.ID)
		byID[u.ID] = record
		records = append(records, record)
	}

	var roles []models.UserRole
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Order("user_id, position, role").
		Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to load customer roles: %w", err)
	}
	for _, role := range roles {
		if record, ok := byID[role.UserID]; ok {
			record.Roles = append(record.Roles, role.Role)
		}
	}

	var meta []models.UserMeta
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Order("umeta_id").
		Find(&meta).Error; err != nil {
		return nil, fmt.Errorf("failed to load customer attributes: %w", err)
	}
	for _, m := range meta {
		record, ok := byID[m.UserID]
		if !ok {
			continue
		}
		// first value wins for repeated keys
		if _, exists := record.Attributes[m.MetaKey]; !exists {
			record.Attributes[m.MetaKey] = m.MetaValue
		}
	}

	return records, nil
}
