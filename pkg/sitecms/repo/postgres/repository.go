package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alsalamah/sitecms/pkg/sitecms"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// siteConfigID is the fixed identity of the site config singleton row. All
// upserts target this id, which makes concurrent saves converge on one row.
var siteConfigID = uuid.MustParse("6f1e0001-0000-4000-8000-000000000001")

// Repository implements sitecms.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) *Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{db: pool}
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "sections_name") {
				return sitecms.ErrSectionNameExists
			}
			if strings.Contains(pgErr.ConstraintName, "users_email") {
				return sitecms.ErrEmailExists
			}
			return fmt.Errorf("duplicate entry")
		case "23503": // foreign_key_violation
			if strings.Contains(pgErr.ConstraintName, "menu_items_parent") {
				return sitecms.ErrMenuParentNotFound
			}
			return fmt.Errorf("referenced record not found")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

// Singleton section operations

func (r *Repository) GetSiteSection(ctx context.Context, kind sitecms.SectionKind) (*sitecms.SiteSection, error) {
	query := `
        SELECT id, kind, payload, created_at, updated_at
        FROM site_sections WHERE kind = $1`

	var section sitecms.SiteSection
	var payload []byte
	err := r.db.QueryRow(ctx, query, string(kind)).Scan(
		&section.ID, &section.Kind, &payload, &section.CreatedAt, &section.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrSectionNotFound
		}
		return nil, r.handlePostgresError("get site section", err)
	}

	section.Payload = payload
	return &section, nil
}

// UpsertSiteSection inserts or updates the row for the section's kind in one
// statement. The UNIQUE constraint on kind is what enforces the singleton
// invariant; there is no read-before-write.
func (r *Repository) UpsertSiteSection(ctx context.Context, section *sitecms.SiteSection) (*sitecms.SiteSection, error) {
	query := `
		INSERT INTO site_sections (id, kind, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (kind) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
		RETURNING id, kind, payload, created_at, updated_at`

	var saved sitecms.SiteSection
	var payload []byte
	err := r.db.QueryRow(ctx, query,
		section.ID, string(section.Kind), []byte(section.Payload),
		section.CreatedAt, section.UpdatedAt).Scan(
		&saved.ID, &saved.Kind, &payload, &saved.CreatedAt, &saved.UpdatedAt)

	if err != nil {
		return nil, r.handlePostgresError("upsert site section", err)
	}

	saved.Payload = payload
	return &saved, nil
}

// Site config operations

func (r *Repository) GetSiteConfig(ctx context.Context) (*sitecms.SiteConfig, error) {
	query := `
        SELECT id, company_name, parent_company, logo_url, tagline,
               head_office_email, head_office_phone, head_office_address,
               created_at, updated_at
        FROM site_config WHERE id = $1`

	var cfg sitecms.SiteConfig
	err := r.db.QueryRow(ctx, query, siteConfigID).Scan(
		&cfg.ID, &cfg.CompanyName, &cfg.ParentCompany, &cfg.LogoURL, &cfg.Tagline,
		&cfg.HeadOfficeEmail, &cfg.HeadOfficePhone, &cfg.HeadOfficeAddress,
		&cfg.CreatedAt, &cfg.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrSiteConfigNotFound
		}
		return nil, r.handlePostgresError("get site config", err)
	}

	return &cfg, nil
}

func (r *Repository) UpsertSiteConfig(ctx context.Context, cfg *sitecms.SiteConfig) (*sitecms.SiteConfig, error) {
	query := `
		INSERT INTO site_config (
			id, company_name, parent_company, logo_url, tagline,
			head_office_email, head_office_phone, head_office_address,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			parent_company = EXCLUDED.parent_company,
			logo_url = EXCLUDED.logo_url,
			tagline = EXCLUDED.tagline,
			head_office_email = EXCLUDED.head_office_email,
			head_office_phone = EXCLUDED.head_office_phone,
			head_office_address = EXCLUDED.head_office_address,
			updated_at = EXCLUDED.updated_at
		RETURNING id, company_name, parent_company, logo_url, tagline,
		          head_office_email, head_office_phone, head_office_address,
		          created_at, updated_at`

	var saved sitecms.SiteConfig
	err := r.db.QueryRow(ctx, query,
		siteConfigID, cfg.CompanyName, cfg.ParentCompany, cfg.LogoURL, cfg.Tagline,
		cfg.HeadOfficeEmail, cfg.HeadOfficePhone, cfg.HeadOfficeAddress,
		cfg.CreatedAt, cfg.UpdatedAt).Scan(
		&saved.ID, &saved.CompanyName, &saved.ParentCompany, &saved.LogoURL, &saved.Tagline,
		&saved.HeadOfficeEmail, &saved.HeadOfficePhone, &saved.HeadOfficeAddress,
		&saved.CreatedAt, &saved.UpdatedAt)

	if err != nil {
		return nil, r.handlePostgresError("upsert site config", err)
	}

	return &saved, nil
}

// Key/value config operations

func (r *Repository) GetConfigEntry(ctx context.Context, key string) (*sitecms.ConfigEntry, error) {
	query := `
        SELECT id, key, value, description, created_at, updated_at
        FROM config_entries WHERE key = $1`

	var entry sitecms.ConfigEntry
	err := r.db.QueryRow(ctx, query, key).Scan(
		&entry.ID, &entry.Key, &entry.Value, &entry.Description,
		&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrConfigEntryNotFound
		}
		return nil, r.handlePostgresError("get config entry", err)
	}

	return &entry, nil
}

func (r *Repository) ListConfigEntries(ctx context.Context) ([]*sitecms.ConfigEntry, error) {
	query := `
        SELECT id, key, value, description, created_at, updated_at
        FROM config_entries ORDER BY key ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handlePostgresError("list config entries", err)
	}
	defer rows.Close()

	entries := []*sitecms.ConfigEntry{}
	for rows.Next() {
		var entry sitecms.ConfigEntry
		if err := rows.Scan(
			&entry.ID, &entry.Key, &entry.Value, &entry.Description,
			&entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

func (r *Repository) UpsertConfigEntry(ctx context.Context, entry *sitecms.ConfigEntry) (*sitecms.ConfigEntry, error) {
	query := `
		INSERT INTO config_entries (id, key, value, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
		RETURNING id, key, value, description, created_at, updated_at`

	var saved sitecms.ConfigEntry
	err := r.db.QueryRow(ctx, query,
		entry.ID, entry.Key, entry.Value, entry.Description,
		entry.CreatedAt, entry.UpdatedAt).Scan(
		&saved.ID, &saved.Key, &saved.Value, &saved.Description,
		&saved.CreatedAt, &saved.UpdatedAt)

	if err != nil {
		return nil, r.handlePostgresError("upsert config entry", err)
	}

	return &saved, nil
}

// Generic section operations

func (r *Repository) CreateSection(ctx context.Context, section *sitecms.Section) error {
	query := `
		INSERT INTO sections (
			id, name, title, subtitle, content, section_type, data,
			is_active, sort_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		section.ID, section.Name, section.Title, section.Subtitle, section.Content,
		string(section.SectionType), []byte(section.Data),
		section.IsActive, section.SortOrder, section.CreatedAt, section.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create section", err)
	}

	return nil
}

func (r *Repository) ListSections(ctx context.Context, filter sitecms.SectionFilter) ([]*sitecms.Section, error) {
	query := `
        SELECT id, name, title, subtitle, content, section_type, data,
               is_active, sort_order, created_at, updated_at
        FROM sections
        WHERE ($1::text IS NULL OR name = $1)
          AND ($2::boolean IS NULL OR is_active = $2)
        ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.db.Query(ctx, query, filter.Name, filter.IsActive)
	if err != nil {
		return nil, r.handlePostgresError("list sections", err)
	}
	defer rows.Close()

	sections := []*sitecms.Section{}
	for rows.Next() {
		var section sitecms.Section
		var data []byte
		if err := rows.Scan(
			&section.ID, &section.Name, &section.Title, &section.Subtitle,
			&section.Content, &section.SectionType, &data,
			&section.IsActive, &section.SortOrder,
			&section.CreatedAt, &section.UpdatedAt); err != nil {
			return nil, err
		}
		section.Data = data
		sections = append(sections, &section)
	}

	return sections, rows.Err()
}

// Menu operations

func (r *Repository) CreateMenuItem(ctx context.Context, item *sitecms.MenuItem) error {
	query := `
		INSERT INTO menu_items (
			id, title, href, sort_order, is_active, parent_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		item.ID, item.Title, item.Href, item.SortOrder, item.IsActive,
		item.ParentID, item.CreatedAt, item.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create menu item", err)
	}

	return nil
}

func (r *Repository) ListMenuItems(ctx context.Context, onlyActive bool) ([]*sitecms.MenuItem, error) {
	query := `
        SELECT id, title, href, sort_order, is_active, parent_id, created_at, updated_at
        FROM menu_items
        WHERE NOT $1::boolean OR is_active
        ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.db.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, r.handlePostgresError("list menu items", err)
	}
	defer rows.Close()

	items := []*sitecms.MenuItem{}
	for rows.Next() {
		var item sitecms.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Href, &item.SortOrder, &item.IsActive,
			&item.ParentID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

// User operations

func (r *Repository) CreateUser(ctx context.Context, user *sitecms.User) error {
	query := `
		INSERT INTO users (
			id, email, name, password_hash, role, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash,
		string(user.Role), user.IsActive, user.CreatedAt, user.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create user", err)
	}

	return nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]*sitecms.User, error) {
	query := `
        SELECT id, email, name, password_hash, role, is_active, created_at, updated_at
        FROM users ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handlePostgresError("list users", err)
	}
	defer rows.Close()

	users := []*sitecms.User{}
	for rows.Next() {
		var user sitecms.User
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Name, &user.PasswordHash,
			&user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*sitecms.User, error) {
	query := `
        SELECT id, email, name, password_hash, role, is_active, created_at, updated_at
        FROM users WHERE email = $1`

	var user sitecms.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrUserNotFound
		}
		return nil, r.handlePostgresError("get user by email", err)
	}

	return &user, nil
}

var _ sitecms.Repository = (*Repository)(nil)
