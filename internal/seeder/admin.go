package seeder

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/agrotech/agropop/internal/models"
)

// AdminSeeder creates the initial admin user when the users table is empty.
// It does nothing once any user exists.
type AdminSeeder struct {
	DB       *sql.DB
	Username string
	Password string
	Email    string
}

func (s *AdminSeeder) Name() string { return "admin_user" }

func (s *AdminSeeder) Run(ctx context.Context) error {
	count, err := models.CountUsers(ctx, s.DB)
	if err != nil {
		return fmt.Errorf("check user count: %w", err)
	}
	if count > 0 {
		return nil
	}

	if s.Username == "" || s.Password == "" {
		return fmt.Errorf("no users exist and AGROPOP_ADMIN_USER / AGROPOP_ADMIN_PASS are not set")
	}

	user, err := models.CreateUser(ctx, s.DB, s.Username, s.Password, s.Email, true)
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	log.Printf("Bootstrapped admin user: %s (id=%d)", user.Username, user.ID)
	return nil
}
