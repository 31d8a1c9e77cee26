package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS offerings (
		id UUID PRIMARY KEY,
		provider_id UUID NOT NULL,
		title VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price > 0),
		status TEXT NOT NULL CHECK (status IN ('active', 'inactive'))
	);`,
	`CREATE INDEX IF NOT EXISTS idx_offerings_provider_id ON offerings (provider_id);`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		client_id UUID NOT NULL,
		provider_id UUID NOT NULL,
		service_id UUID NOT NULL REFERENCES offerings(id),
		charged_amount NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('pending', 'in_progress', 'completed', 'cancelled')),
		created_at TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ,
		CHECK (client_id <> provider_id),
		CHECK ((status = 'completed') = (completed_at IS NOT NULL))
	);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status_created_at ON orders (status, created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_client_id ON orders (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_provider_id ON orders (provider_id);`,
	`CREATE TABLE IF NOT EXISTS service_requests (
		id UUID PRIMARY KEY,
		client_id UUID NOT NULL,
		provider_id UUID NOT NULL,
		service_id UUID NOT NULL REFERENCES offerings(id),
		charged_amount NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('pending', 'in_progress', 'completed', 'cancelled')),
		created_at TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ,
		CHECK (client_id <> provider_id),
		CHECK ((status = 'completed') = (completed_at IS NOT NULL))
	);`,
	`CREATE INDEX IF NOT EXISTS idx_service_requests_status_created_at ON service_requests (status, created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_service_requests_client_id ON service_requests (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_service_requests_provider_id ON service_requests (provider_id);`,
	`CREATE TABLE IF NOT EXISTS ratings (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		client_id UUID NOT NULL,
		provider_id UUID NOT NULL,
		score SMALLINT NOT NULL CHECK (score BETWEEN 1 AND 5),
		comment TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT uq_ratings_order_id UNIQUE (order_id),
		CHECK (client_id <> provider_id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_ratings_provider_id ON ratings (provider_id);`,
}

// Migrate creates the marketplace schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
