package sitecms

import "context"

// Service defines the main interface for the site CMS library.
type Service interface {
	// Singleton section operations. GetSiteSection returns (nil, nil) when no
	// row exists for the kind; absence is a valid state and the public site
	// falls back to built-in copy.
	GetSiteSection(ctx context.Context, kind SectionKind) (*SiteSection, error)
	SaveSiteSection(ctx context.Context, req SaveSectionRequest) (*SiteSection, error)

	// Site config singleton operations. GetSiteConfig returns (nil, nil) when
	// the row has not been created yet.
	GetSiteConfig(ctx context.Context) (*SiteConfig, error)
	SaveSiteConfig(ctx context.Context, req SaveSiteConfigRequest) (*SiteConfig, error)

	// Key/value config operations
	GetConfigEntry(ctx context.Context, key string) (*ConfigEntry, error)
	ListConfigValues(ctx context.Context) (map[string]string, error)
	UpsertConfigEntry(ctx context.Context, req UpsertConfigEntryRequest) (*ConfigEntry, error)

	// Generic section operations
	CreateSection(ctx context.Context, req CreateSectionRequest) (*Section, error)
	ListSections(ctx context.Context, filter SectionFilter) ([]*Section, error)

	// Menu operations
	CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*MenuItem, error)
	ListActiveMenu(ctx context.Context) ([]*MenuNode, error)

	// User operations
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetSiteSnapshot assembles the denormalized payload for the public site:
	// one concurrent read per section kind plus site config and menu. Absent
	// sections appear as null; only a persistence failure fails the call.
	GetSiteSnapshot(ctx context.Context) (*SiteSnapshot, error)
}
