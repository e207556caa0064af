package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/alsalamah/sitecms/pkg/sitecms"
)

// Repository implements sitecms.Repository using in-memory storage.
// Singleton tables are maps keyed by their natural identity, so the
// at-most-one-row invariant holds by construction.
type Repository struct {
	mu             sync.RWMutex
	sections       map[sitecms.SectionKind]*sitecms.SiteSection
	siteConfig     *sitecms.SiteConfig
	configEntries  map[string]*sitecms.ConfigEntry
	genericByID    map[uuid.UUID]*sitecms.Section
	genericByName  map[string]uuid.UUID
	menuItems      map[uuid.UUID]*sitecms.MenuItem
	users          map[uuid.UUID]*sitecms.User
	userIDsByEmail map[string]uuid.UUID
}

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		sections:       make(map[sitecms.SectionKind]*sitecms.SiteSection),
		configEntries:  make(map[string]*sitecms.ConfigEntry),
		genericByID:    make(map[uuid.UUID]*sitecms.Section),
		genericByName:  make(map[string]uuid.UUID),
		menuItems:      make(map[uuid.UUID]*sitecms.MenuItem),
		users:          make(map[uuid.UUID]*sitecms.User),
		userIDsByEmail: make(map[string]uuid.UUID),
	}
}

// Singleton section operations

func (r *Repository) GetSiteSection(ctx context.Context, kind sitecms.SectionKind) (*sitecms.SiteSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	section, exists := r.sections[kind]
	if !exists {
		return nil, sitecms.ErrSectionNotFound
	}

	sectionCopy := *section
	return &sectionCopy, nil
}

func (r *Repository) UpsertSiteSection(ctx context.Context, section *sitecms.SiteSection) (*sitecms.SiteSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sectionCopy := *section
	if existing, exists := r.sections[section.Kind]; exists {
		// Keep the original identity and creation time on update.
		sectionCopy.ID = existing.ID
		sectionCopy.CreatedAt = existing.CreatedAt
	}
	r.sections[section.Kind] = &sectionCopy

	result := sectionCopy
	return &result, nil
}

// Site config operations

func (r *Repository) GetSiteConfig(ctx context.Context) (*sitecms.SiteConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.siteConfig == nil {
		return nil, sitecms.ErrSiteConfigNotFound
	}

	cfgCopy := *r.siteConfig
	return &cfgCopy, nil
}

func (r *Repository) UpsertSiteConfig(ctx context.Context, cfg *sitecms.SiteConfig) (*sitecms.SiteConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfgCopy := *cfg
	if r.siteConfig != nil {
		cfgCopy.ID = r.siteConfig.ID
		cfgCopy.CreatedAt = r.siteConfig.CreatedAt
	} else if cfgCopy.ID == uuid.Nil {
		cfgCopy.ID = uuid.New()
	}
	r.siteConfig = &cfgCopy

	result := cfgCopy
	return &result, nil
}

// Key/value config operations

func (r *Repository) GetConfigEntry(ctx context.Context, key string) (*sitecms.ConfigEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.configEntries[key]
	if !exists {
		return nil, sitecms.ErrConfigEntryNotFound
	}

	entryCopy := *entry
	return &entryCopy, nil
}

func (r *Repository) ListConfigEntries(ctx context.Context) ([]*sitecms.ConfigEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*sitecms.ConfigEntry, 0, len(r.configEntries))
	for _, entry := range r.configEntries {
		entryCopy := *entry
		result = append(result, &entryCopy)
	}

	// Sort by key ascending
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result, nil
}

func (r *Repository) UpsertConfigEntry(ctx context.Context, entry *sitecms.ConfigEntry) (*sitecms.ConfigEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entryCopy := *entry
	if existing, exists := r.configEntries[entry.Key]; exists {
		entryCopy.ID = existing.ID
		entryCopy.CreatedAt = existing.CreatedAt
	}
	r.configEntries[entry.Key] = &entryCopy

	result := entryCopy
	return &result, nil
}

// Generic section operations

func (r *Repository) CreateSection(ctx context.Context, section *sitecms.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.genericByName[section.Name]; exists {
		return sitecms.ErrSectionNameExists
	}

	sectionCopy := *section
	r.genericByID[section.ID] = &sectionCopy
	r.genericByName[section.Name] = section.ID

	return nil
}

func (r *Repository) ListSections(ctx context.Context, filter sitecms.SectionFilter) ([]*sitecms.Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*sitecms.Section{}
	for _, section := range r.genericByID {
		if filter.Name != nil && section.Name != *filter.Name {
			continue
		}
		if filter.IsActive != nil && section.IsActive != *filter.IsActive {
			continue
		}
		sectionCopy := *section
		result = append(result, &sectionCopy)
	}

	// Sort by order ascending, creation time breaking ties
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].SortOrder != result[j].SortOrder {
			return result[i].SortOrder < result[j].SortOrder
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// Menu operations

func (r *Repository) CreateMenuItem(ctx context.Context, item *sitecms.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ParentID != nil {
		if _, exists := r.menuItems[*item.ParentID]; !exists {
			return sitecms.ErrMenuParentNotFound
		}
	}

	itemCopy := *item
	r.menuItems[item.ID] = &itemCopy

	return nil
}

func (r *Repository) ListMenuItems(ctx context.Context, onlyActive bool) ([]*sitecms.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*sitecms.MenuItem{}
	for _, item := range r.menuItems {
		if onlyActive && !item.IsActive {
			continue
		}
		itemCopy := *item
		result = append(result, &itemCopy)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].SortOrder != result[j].SortOrder {
			return result[i].SortOrder < result[j].SortOrder
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// User operations

func (r *Repository) CreateUser(ctx context.Context, user *sitecms.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.userIDsByEmail[user.Email]; exists {
		return sitecms.ErrEmailExists
	}

	userCopy := *user
	r.users[user.ID] = &userCopy
	r.userIDsByEmail[user.Email] = user.ID

	return nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]*sitecms.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*sitecms.User{}
	for _, user := range r.users {
		userCopy := *user
		result = append(result, &userCopy)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*sitecms.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.userIDsByEmail[email]
	if !exists {
		return nil, sitecms.ErrUserNotFound
	}

	userCopy := *r.users[id]
	return &userCopy, nil
}

var _ sitecms.Repository = (*Repository)(nil)
