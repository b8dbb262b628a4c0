package database

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"micron-manager/internal/config"
	"micron-manager/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var fixtureSeq atomic.Int64

// SetupTestDB opens a migrated in-memory SQLite store. The pool is pinned to
// one connection so every query sees the same in-memory database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return testDB
}

// CustomerFixture describes a user to insert. Zero fields are filled with fake data,
// nil Roles means a single customer role.
type CustomerFixture struct {
	Login       string
	Email       string
	DisplayName string
	Registered  time.Time
	Roles       []string
	Attributes  map[string]string
}

// CreateTestCustomer inserts a user with its roles and attributes
func CreateTestCustomer(t *testing.T, db *DB, f CustomerFixture) *models.User {
	t.Helper()

	seq := fixtureSeq.Add(1)

	if f.Login == "" {
		f.Login = fmt.Sprintf("%s%d", gofakeit.Username(), seq)
	}
	if f.Email == "" {
		f.Email = fmt.Sprintf("customer%d@example.com", seq)
	}
	if f.DisplayName == "" {
		f.DisplayName = gofakeit.Name()
	}
	if f.Registered.IsZero() {
		f.Registered = time.Now().UTC().Add(-time.Duration(seq) * time.Minute)
	}
	if f.Roles == nil {
		f.Roles = []string{models.RoleCustomer}
	}

	user := &models.User{
		UserLogin:      f.Login,
		UserEmail:      f.Email,
		DisplayName:    f.DisplayName,
		UserRegistered: f.Registered,
	}

	if err := db.Omit(clause.Associations).Create(user).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	for i, role := range f.Roles {
		if err := db.Create(&models.UserRole{UserID: user.ID, Role: role, Position: i}).Error; err != nil {
			t.Fatalf("failed to assign role %s: %v", role, err)
		}
	}

	for key, value := range f.Attributes {
		if err := db.Create(&models.UserMeta{UserID: user.ID, MetaKey: key, MetaValue: value}).Error; err != nil {
			t.Fatalf("failed to store attribute %s: %v", key, err)
		}
	}

	return user
}

// CleanupTestDB empties the user store tables
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"usermeta",
		"user_roles",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
