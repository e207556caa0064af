package sitecms

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// service implements the Service interface
type service struct {
	repository Repository
	bcryptCost int
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithBcryptCost overrides the password hashing cost (tests use a low cost).
func WithBcryptCost(cost int) Option {
	return func(s *service) {
		s.bcryptCost = cost
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		bcryptCost: bcrypt.DefaultCost,
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

// Singleton section operations

func (s *service) GetSiteSection(ctx context.Context, kind SectionKind) (*SiteSection, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSectionKind, kind)
	}

	section, err := s.repository.GetSiteSection(ctx, kind)
	if err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			// Absence is a valid state; the caller renders defaults.
			return nil, nil
		}
		return nil, &SectionError{Kind: kind, Op: "get", Err: err}
	}
	return section, nil
}

func (s *service) SaveSiteSection(ctx context.Context, req SaveSectionRequest) (*SiteSection, error) {
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSectionKind, req.Kind)
	}

	payload, err := NormalizeSectionPayload(req.Kind, req.Payload)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	section := &SiteSection{
		ID:        uuid.New(),
		Kind:      req.Kind,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.repository.UpsertSiteSection(ctx, section)
	if err != nil {
		return nil, &SectionError{Kind: req.Kind, Op: "save", Err: err}
	}
	return saved, nil
}

// Site config operations

func (s *service) GetSiteConfig(ctx context.Context) (*SiteConfig, error) {
	cfg, err := s.repository.GetSiteConfig(ctx)
	if err != nil {
		if errors.Is(err, ErrSiteConfigNotFound) {
			return nil, nil
		}
		return nil, &ConfigError{Op: "get site config", Err: err}
	}
	return cfg, nil
}

func (s *service) SaveSiteConfig(ctx context.Context, req SaveSiteConfigRequest) (*SiteConfig, error) {
	now := time.Now().UTC()
	cfg := &SiteConfig{
		CompanyName:       req.CompanyName,
		ParentCompany:     req.ParentCompany,
		LogoURL:           req.LogoURL,
		Tagline:           req.Tagline,
		HeadOfficeEmail:   req.HeadOfficeEmail,
		HeadOfficePhone:   req.HeadOfficePhone,
		HeadOfficeAddress: req.HeadOfficeAddress,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	saved, err := s.repository.UpsertSiteConfig(ctx, cfg)
	if err != nil {
		return nil, &ConfigError{Op: "save site config", Err: err}
	}
	return saved, nil
}

// Key/value config operations

func (s *service) GetConfigEntry(ctx context.Context, key string) (*ConfigEntry, error) {
	entry, err := s.repository.GetConfigEntry(ctx, key)
	if err != nil {
		if errors.Is(err, ErrConfigEntryNotFound) {
			return nil, nil
		}
		return nil, &ConfigError{Key: key, Op: "get", Err: err}
	}
	return entry, nil
}

func (s *service) ListConfigValues(ctx context.Context) (map[string]string, error) {
	entries, err := s.repository.ListConfigEntries(ctx)
	if err != nil {
		return nil, &ConfigError{Op: "list", Err: err}
	}

	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		values[entry.Key] = entry.Value
	}
	return values, nil
}

func (s *service) UpsertConfigEntry(ctx context.Context, req UpsertConfigEntryRequest) (*ConfigEntry, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, &ConfigError{Op: "upsert", Err: errors.New("key is required")}
	}

	now := time.Now().UTC()
	entry := &ConfigEntry{
		ID:          uuid.New(),
		Key:         key,
		Value:       req.Value,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.repository.UpsertConfigEntry(ctx, entry)
	if err != nil {
		return nil, &ConfigError{Key: key, Op: "upsert", Err: err}
	}
	return saved, nil
}

// Generic section operations

func (s *service) CreateSection(ctx context.Context, req CreateSectionRequest) (*Section, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("section name is required")
	}

	sectionType := req.SectionType
	if sectionType == "" {
		sectionType = SectionTypeCustom
	}
	if !sectionType.IsValid() {
		return nil, fmt.Errorf("invalid section type %q", req.SectionType)
	}

	now := time.Now().UTC()
	section := &Section{
		ID:          uuid.New(),
		Name:        name,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Content:     req.Content,
		SectionType: sectionType,
		Data:        req.Data,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repository.CreateSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *service) ListSections(ctx context.Context, filter SectionFilter) ([]*Section, error) {
	return s.repository.ListSections(ctx, filter)
}

// Menu operations

func (s *service) CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*MenuItem, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.New("menu item title is required")
	}

	var parentID *uuid.UUID
	if req.ParentID != nil && *req.ParentID != "" {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("invalid parent id: %w", err)
		}
		parentID = &id
	}

	now := time.Now().UTC()
	item := &MenuItem{
		ID:        uuid.New(),
		Title:     req.Title,
		Href:      req.Href,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListActiveMenu returns active top-level items with their own active
// children, both ordered by sort order ascending. Depth is fixed at two
// levels by construction, so no cycle handling is needed.
func (s *service) ListActiveMenu(ctx context.Context) ([]*MenuNode, error) {
	items, err := s.repository.ListMenuItems(ctx, true)
	if err != nil {
		return nil, err
	}

	childrenByParent := make(map[uuid.UUID][]MenuItem)
	nodes := []*MenuNode{}
	for _, item := range items {
		if item.ParentID != nil {
			childrenByParent[*item.ParentID] = append(childrenByParent[*item.ParentID], *item)
			continue
		}
		nodes = append(nodes, &MenuNode{MenuItem: *item, Children: []MenuItem{}})
	}

	for _, node := range nodes {
		if children, ok := childrenByParent[node.ID]; ok {
			sort.SliceStable(children, func(i, j int) bool {
				if children[i].SortOrder != children[j].SortOrder {
					return children[i].SortOrder < children[j].SortOrder
				}
				return children[i].CreatedAt.Before(children[j].CreatedAt)
			})
			node.Children = children
		}
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].SortOrder != nodes[j].SortOrder {
			return nodes[i].SortOrder < nodes[j].SortOrder
		}
		return nodes[i].CreatedAt.Before(nodes[j].CreatedAt)
	})

	return nodes, nil
}

// User operations

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, errors.New("email is required")
	}
	if req.Password == "" {
		return nil, errors.New("password is required")
	}

	role := req.Role
	if role == "" {
		role = RoleViewer
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     req.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repository.ListUsers(ctx)
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}
