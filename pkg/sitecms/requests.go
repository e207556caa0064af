package sitecms

import "encoding/json"

// Request DTOs

// SaveSectionRequest contains parameters for upserting a singleton section.
// Payload is the raw kind-specific document; it is validated and normalized
// before it is stored.
type SaveSectionRequest struct {
	Kind    SectionKind
	Payload json.RawMessage
}

// SaveSiteConfigRequest contains parameters for upserting the site config
// singleton. All fields are written as provided.
type SaveSiteConfigRequest struct {
	CompanyName       string `json:"companyName"`
	ParentCompany     string `json:"parentCompany"`
	LogoURL           string `json:"logoURL"`
	Tagline           string `json:"tagline"`
	HeadOfficeEmail   string `json:"headOfficeEmail"`
	HeadOfficePhone   string `json:"headOfficePhone"`
	HeadOfficeAddress string `json:"headOfficeAddress"`
}

// UpsertConfigEntryRequest contains parameters for upserting a key/value
// config entry.
type UpsertConfigEntryRequest struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// CreateSectionRequest contains parameters for creating a generic section.
type CreateSectionRequest struct {
	Name        string
	Title       string
	Subtitle    string
	Content     string
	SectionType SectionType
	Data        json.RawMessage
	IsActive    bool
	SortOrder   int
}

// SectionFilter selects generic sections by name and/or active flag.
// Nil fields match everything.
type SectionFilter struct {
	Name     *string
	IsActive *bool
}

// CreateMenuItemRequest contains parameters for creating a menu item.
type CreateMenuItemRequest struct {
	Title     string
	Href      *string
	SortOrder int
	IsActive  bool
	ParentID  *string
}

// CreateUserRequest contains parameters for creating an admin user.
// Password is hashed before storage and never persisted in clear.
type CreateUserRequest struct {
	Email    string
	Name     string
	Password string
	Role     UserRole
	IsActive bool
}
