package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"micron-manager/internal/database"
	"micron-manager/internal/models"
	"micron-manager/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
)

// SeedCustomers fills an empty user store with count fake customers and
// subscribers. A store that already holds users is left untouched.
func SeedCustomers(ctx context.Context, users repositories.UserRepositoryInterface, count int, logger *slog.Logger) error {
	existing, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if existing > 0 {
		logger.Info("user store already populated, skipping seed", slog.Int64("users", existing))
		return nil
	}

	for i := 0; i < count; i++ {
		attrs := database.FakeCustomerAttributes()
		login := loginFromName(attrs["first_name"], attrs["last_name"], i)

		role := models.RoleCustomer
		if i%4 == 3 {
			role = models.RoleSubscriber
		}

		user := &models.User{
			UserLogin:      login,
			UserEmail:      fmt.Sprintf("%s@%s", login, gofakeit.DomainName()),
			DisplayName:    attrs["first_name"] + " " + attrs["last_name"],
			UserRegistered: gofakeit.DateRange(time.Now().AddDate(-2, 0, 0), time.Now()).UTC(),
		}

		if err := users.Create(ctx, user, []string{role}, attrs); err != nil {
			return fmt.Errorf("failed to seed customer %d: %w", i, err)
		}
	}

	logger.Info("seeded customers", slog.Int("count", count))
	return nil
}

func loginFromName(first, last string, n int) string {
	keep := func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}
	return fmt.Sprintf("%s.%s%d",
		strings.Map(keep, strings.ToLower(first)),
		strings.Map(keep, strings.ToLower(last)),
		n,
	)
}
