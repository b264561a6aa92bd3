package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the portal tables when they do not exist yet. It is
// idempotent and safe to run on every start.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
      id SERIAL PRIMARY KEY,
      username TEXT NOT NULL,
      email TEXT NOT NULL,
      password TEXT NOT NULL,
      first_name TEXT NOT NULL,
      last_name TEXT NOT NULL,
      department TEXT,
      position TEXT,
      role TEXT NOT NULL DEFAULT 'employee',
      phone TEXT,
      address TEXT,
      linkedin_url TEXT,
      github_url TEXT,
      aadhaar_number TEXT,
      pan_number TEXT,
      bank_name TEXT,
      bank_account TEXT,
      ifsc_code TEXT,
      join_date TIMESTAMPTZ,
      end_date TIMESTAMPTZ,
      last_login TIMESTAMPTZ NOT NULL DEFAULT now(),
      CONSTRAINT employees_username_key UNIQUE (username),
      CONSTRAINT employees_email_key UNIQUE (email)
    )`,
		`CREATE TABLE IF NOT EXISTS onboarding_steps (
      id SERIAL PRIMARY KEY,
      name TEXT NOT NULL,
      description TEXT,
      step_order INT NOT NULL
    )`,
		`CREATE TABLE IF NOT EXISTS employee_onboarding (
      id SERIAL PRIMARY KEY,
      employee_id INT NOT NULL REFERENCES employees(id),
      step_id INT NOT NULL REFERENCES onboarding_steps(id),
      status TEXT NOT NULL DEFAULT 'not_started',
      completed_at TIMESTAMPTZ,
      UNIQUE (employee_id, step_id)
    )`,
		`CREATE TABLE IF NOT EXISTS document_categories (
      id SERIAL PRIMARY KEY,
      name TEXT NOT NULL UNIQUE,
      description TEXT
    )`,
		`CREATE TABLE IF NOT EXISTS documents (
      id SERIAL PRIMARY KEY,
      name TEXT NOT NULL,
      filename TEXT NOT NULL,
      filesize BIGINT NOT NULL DEFAULT 0,
      mime_type TEXT NOT NULL DEFAULT '',
      category_id INT REFERENCES document_categories(id),
      uploaded_by INT NOT NULL REFERENCES employees(id),
      uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
      is_public BOOLEAN NOT NULL DEFAULT false,
      is_verified BOOLEAN NOT NULL DEFAULT false,
      metadata JSONB
    )`,
		`CREATE TABLE IF NOT EXISTS events (
      id SERIAL PRIMARY KEY,
      title TEXT NOT NULL,
      description TEXT,
      start_date TIMESTAMPTZ NOT NULL,
      end_date TIMESTAMPTZ NOT NULL,
      location TEXT,
      category TEXT,
      created_by INT NOT NULL REFERENCES employees(id)
    )`,
		`CREATE TABLE IF NOT EXISTS time_off_balances (
      id SERIAL PRIMARY KEY,
      employee_id INT NOT NULL UNIQUE REFERENCES employees(id),
      vacation_total DOUBLE PRECISION NOT NULL DEFAULT 0,
      vacation_used DOUBLE PRECISION NOT NULL DEFAULT 0,
      sick_total DOUBLE PRECISION NOT NULL DEFAULT 0,
      sick_used DOUBLE PRECISION NOT NULL DEFAULT 0,
      personal_total DOUBLE PRECISION NOT NULL DEFAULT 0,
      personal_used DOUBLE PRECISION NOT NULL DEFAULT 0
    )`,
		`CREATE TABLE IF NOT EXISTS report_dashboards (
      id SERIAL PRIMARY KEY,
      employee_id INT NOT NULL REFERENCES employees(id),
      name TEXT NOT NULL,
      layout JSONB,
      is_default BOOLEAN NOT NULL DEFAULT false
    )`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
