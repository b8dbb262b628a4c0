package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"micron-manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository handles writes and lookups of users with their roles and attributes
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{
		db: db,
	}
}

// Create stores the user, its roles in the given order and its attributes in one transaction
func (r *UserRepository) Create(ctx context.Context, user *models.User, roles []string, attributes map[string]string) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrUserAlreadyExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		if len(roles) > 0 {
			rows := make([]models.UserRole, 0, len(roles))
			for i, role := range roles {
				rows = append(rows, models.UserRole{UserID: user.ID, Role: role, Position: i})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to assign roles: %w", err)
			}
		}

		if len(attributes) > 0 {
			rows := make([]models.UserMeta, 0, len(attributes))
			for key, value := range attributes {
				rows = append(rows, models.UserMeta{UserID: user.ID, MetaKey: key, MetaValue: value})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to store attributes: %w", err)
			}
		}

		return nil
	})
}

// GetByID retrieves a user with its roles and attributes
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Meta").
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &user, nil
}

// Count returns the number of stored users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Postgres and SQLite duplicate key error detection
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
