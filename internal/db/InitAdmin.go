package db

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// InitAdmin seeds the admin account from ADMIN_EMAIL and ADMIN_PASSWORD on
// first start. Existing accounts are never touched.
func InitAdmin(ctx context.Context, database *Database, logger *zap.Logger) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		logger.Info("admin credentials not configured, skipping admin seed")
		return
	}

	var count int
	err := database.ExecQueryRow(ctx, "SELECT COUNT(*) FROM users WHERE email = $1", adminEmail).Scan(&count)
	if err != nil {
		logger.Fatal("failed to check admin account", zap.Error(err))
	}
	if count > 0 {
		logger.Info("admin account already exists", zap.String("email", adminEmail))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("failed to hash admin password", zap.Error(err))
	}

	_, err = database.Exec(ctx, `
        INSERT INTO users (id, email, name, role, is_active, created_at, password_hash)
        VALUES ($1, $2, $3, 'admin', true, $4, $5)
    `, uuid.NewString(), adminEmail, "Administrator", time.Now().UTC(), string(hash))
	if err != nil {
		logger.Fatal("failed to create admin account", zap.Error(err))
	}
	logger.Info("admin account created", zap.String("email", adminEmail))
}
