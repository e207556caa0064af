package sitecms

import "context"

// Repository defines the persistence interface for the site CMS.
//
// Singleton rows (site sections, site config) use atomic upserts keyed by a
// fixed identity, so two concurrent saves can never produce two rows.
// Lookups return the package sentinels (ErrSectionNotFound, ...) when the
// row does not exist; callers decide whether absence is an error.
type Repository interface {
	// Singleton section operations
	GetSiteSection(ctx context.Context, kind SectionKind) (*SiteSection, error)
	UpsertSiteSection(ctx context.Context, section *SiteSection) (*SiteSection, error)

	// Site config singleton operations
	GetSiteConfig(ctx context.Context) (*SiteConfig, error)
	UpsertSiteConfig(ctx context.Context, cfg *SiteConfig) (*SiteConfig, error)

	// Key/value config operations
	GetConfigEntry(ctx context.Context, key string) (*ConfigEntry, error)
	ListConfigEntries(ctx context.Context) ([]*ConfigEntry, error)
	UpsertConfigEntry(ctx context.Context, entry *ConfigEntry) (*ConfigEntry, error)

	// Generic section operations
	CreateSection(ctx context.Context, section *Section) error
	ListSections(ctx context.Context, filter SectionFilter) ([]*Section, error)

	// Menu operations
	CreateMenuItem(ctx context.Context, item *MenuItem) error
	ListMenuItems(ctx context.Context, onlyActive bool) ([]*MenuItem, error)

	// User operations
	CreateUser(ctx context.Context, user *User) error
	ListUsers(ctx context.Context) ([]*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
