package postgres

import "context"

// schema is the full DDL for the site CMS tables. Every statement is
// idempotent so Migrate can run at startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS site_sections (
		id UUID PRIMARY KEY,
		kind VARCHAR(50) NOT NULL,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT site_sections_kind_key UNIQUE (kind)
	)`,
	`CREATE TABLE IF NOT EXISTS site_config (
		id UUID PRIMARY KEY,
		company_name TEXT NOT NULL DEFAULT '',
		parent_company TEXT NOT NULL DEFAULT '',
		logo_url TEXT NOT NULL DEFAULT '',
		tagline TEXT NOT NULL DEFAULT '',
		head_office_email TEXT NOT NULL DEFAULT '',
		head_office_phone TEXT NOT NULL DEFAULT '',
		head_office_address TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS config_entries (
		id UUID PRIMARY KEY,
		key VARCHAR(255) NOT NULL,
		value TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT config_entries_key_key UNIQUE (key)
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		subtitle TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		section_type VARCHAR(50) NOT NULL DEFAULT 'custom',
		data JSONB,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT sections_name_key UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		href TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		parent_id UUID,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT menu_items_parent_id_fkey FOREIGN KEY (parent_id) REFERENCES menu_items (id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'viewer',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT users_email_key UNIQUE (email)
	)`,
	`CREATE INDEX IF NOT EXISTS menu_items_parent_id_idx ON menu_items (parent_id)`,
	`CREATE INDEX IF NOT EXISTS sections_is_active_idx ON sections (is_active)`,
}

// Migrate creates the CMS tables if they do not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return r.handlePostgresError("migrate", err)
		}
	}
	return nil
}
