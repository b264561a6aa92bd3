package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portal/internal/auth"
	"portal/internal/domain/documents"
	"portal/internal/domain/onboarding"
	"portal/internal/platform/config"
)

// Seed inserts the shared reference data and, when configured, the first
// admin account. Every helper is a no-op when its rows already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureSteps(ctx, pool); err != nil {
		return err
	}

	if err := ensureCategories(ctx, pool); err != nil {
		return err
	}

	if cfg.SeedAdminEmail != "" && cfg.SeedAdminPassword != "" {
		if err := ensureAdmin(ctx, pool, cfg.SeedAdminUsername, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return err
		}
	}

	return nil
}

func ensureSteps(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM onboarding_steps").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, step := range onboarding.DefaultSteps {
		_, err := pool.Exec(ctx,
			"INSERT INTO onboarding_steps (name, description, step_order) VALUES ($1, $2, $3)",
			step.Name, step.Description, step.Order)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureCategories(ctx context.Context, pool *pgxpool.Pool) error {
	for _, category := range documents.DefaultCategories {
		_, err := pool.Exec(ctx,
			"INSERT INTO document_categories (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
			category.Name, category.Description)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, username, email, password string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE email = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO employees (username, email, password, first_name, last_name, role)
    VALUES ($1, $2, $3, 'Portal', 'Admin', 'admin')`,
		username, email, hashed)
	return err
}
