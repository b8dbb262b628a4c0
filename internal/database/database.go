package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"micron-manager/internal/config"
	"micron-manager/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// AutoMigrate creates the user store tables from the models
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.UserMeta{},
		&models.UserRole{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the store within ctx
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateIndexes adds the lookup indexes the listing filters rely on
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_user_email_lower ON users(LOWER(user_email))",
		"CREATE INDEX IF NOT EXISTS idx_users_user_registered ON users(user_registered)",
		"CREATE INDEX IF NOT EXISTS idx_users_display_name ON users(display_name)",
		"CREATE INDEX IF NOT EXISTS idx_usermeta_user_id_meta_key ON usermeta(user_id, meta_key)",
		"CREATE INDEX IF NOT EXISTS idx_user_roles_role ON user_roles(role)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", slog.String("query", query), slog.String("error", err.Error()))
		}
	}

	return nil
}

// Initialize connects to the store and brings the schema up to date. SQL
// migrations run through a dedicated connection when AUTO_MIGRATE is set,
// otherwise or on failure the gorm models are auto-migrated.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	migrationDB, err := OpenMigrationDB(cfg.Database.DSN())
	if err != nil {
		return nil, err
	}
	defer migrationDB.Close()

	if err := RunMigrationsIfEnabled(ctx, migrationDB); err != nil {
		slog.Warn("migration runner failed, falling back to gorm auto-migrate", slog.String("error", err.Error()))

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", slog.String("error", err.Error()))
	}

	slog.Info("database initialized")

	return db, nil
}
