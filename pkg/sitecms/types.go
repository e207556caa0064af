package sitecms

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SectionKind identifies a singleton content section on the public site.
// At most one persisted row exists per kind.
type SectionKind string

// Section kind constants (typed).
const (
	SectionHero          SectionKind = "hero"
	SectionServices      SectionKind = "services"
	SectionStats         SectionKind = "stats"
	SectionShowcase      SectionKind = "showcase"
	SectionRecord        SectionKind = "record"
	SectionTruckReveal   SectionKind = "truck_reveal"
	SectionTruckRotation SectionKind = "truck_rotation"
	SectionCoverage      SectionKind = "coverage"
)

// SectionKinds lists every known kind in snapshot order.
var SectionKinds = []SectionKind{
	SectionHero,
	SectionTruckReveal,
	SectionTruckRotation,
	SectionServices,
	SectionStats,
	SectionShowcase,
	SectionRecord,
	SectionCoverage,
}

// IsValid reports whether the kind is one of the known section kinds.
func (k SectionKind) IsValid() bool {
	switch k {
	case SectionHero, SectionServices, SectionStats, SectionShowcase,
		SectionRecord, SectionTruckReveal, SectionTruckRotation, SectionCoverage:
		return true
	}
	return false
}

// Label returns the human-readable name used in error messages
// ("hero section", "coverage section", ...).
func (k SectionKind) Label() string {
	switch k {
	case SectionTruckReveal:
		return "truck reveal section"
	case SectionTruckRotation:
		return "truck rotation section"
	case SectionCoverage:
		return "coverage section"
	default:
		return string(k) + " section"
	}
}

// SiteSection is the persisted row for a singleton content section.
// Payload holds the kind-specific document, validated against the typed
// payload structs below before it is stored.
type SiteSection struct {
	ID        uuid.UUID       `json:"id"`
	Kind      SectionKind     `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// HeroPayload is the hero section document.
type HeroPayload struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	YearText   string `json:"yearText"`
	ScrollText string `json:"scrollText"`
}

// ServiceItem is one entry in the services section.
type ServiceItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ServicesPayload is the services section document.
type ServicesPayload struct {
	Services []ServiceItem `json:"services"`
}

// StatItem is one entry in the stats section.
type StatItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// StatsPayload is the stats section document.
type StatsPayload struct {
	Stats []StatItem `json:"stats"`
}

// ShowcaseImage is one image in the showcase section.
type ShowcaseImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// ShowcasePayload is the showcase section document.
type ShowcasePayload struct {
	Images   []ShowcaseImage `json:"images"`
	Features []ServiceItem   `json:"features"`
}

// RecordFeature is one entry in the record section.
type RecordFeature struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// RecordPayload is the record section document.
type RecordPayload struct {
	Features []RecordFeature `json:"features"`
}

// TruckRevealPayload is the truck reveal section document.
type TruckRevealPayload struct {
	Content string `json:"content"`
}

// RotationSlide is one slide in the truck rotation section.
type RotationSlide struct {
	Number   string `json:"number"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
}

// TruckRotationPayload is the truck rotation section document.
type TruckRotationPayload struct {
	Sections []RotationSlide `json:"sections"`
}

// CoverageRegion is one served region on the coverage map.
type CoverageRegion struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Branches    int     `json:"branches"`
	SubBranches int     `json:"subBranches"`
	Description string  `json:"description"`
}

// Headquarters is the head-office marker on the coverage map.
type Headquarters struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// CoveragePayload is the coverage section document.
type CoveragePayload struct {
	Regions      []CoverageRegion `json:"regions"`
	Headquarters *Headquarters    `json:"headquarters"`
}

// SiteConfig is the singleton site configuration row. Created on first save,
// updated in place thereafter.
type SiteConfig struct {
	ID                uuid.UUID `json:"id"`
	CompanyName       string    `json:"companyName"`
	ParentCompany     string    `json:"parentCompany"`
	LogoURL           string    `json:"logoURL"`
	Tagline           string    `json:"tagline"`
	HeadOfficeEmail   string    `json:"headOfficeEmail"`
	HeadOfficePhone   string    `json:"headOfficePhone"`
	HeadOfficeAddress string    `json:"headOfficeAddress"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ConfigEntry is one key/value configuration entry, upserted by key.
type ConfigEntry struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SectionType tags a generic Section row.
type SectionType string

// Generic section type constants.
const (
	SectionTypeHero         SectionType = "hero"
	SectionTypeServices     SectionType = "services"
	SectionTypeAbout        SectionType = "about"
	SectionTypeContact      SectionType = "contact"
	SectionTypeFeatures     SectionType = "features"
	SectionTypeTestimonials SectionType = "testimonials"
	SectionTypeGallery      SectionType = "gallery"
	SectionTypeCustom       SectionType = "custom"
)

// IsValid reports whether the type is one of the known generic section types.
func (t SectionType) IsValid() bool {
	switch t {
	case SectionTypeHero, SectionTypeServices, SectionTypeAbout, SectionTypeContact,
		SectionTypeFeatures, SectionTypeTestimonials, SectionTypeGallery, SectionTypeCustom:
		return true
	}
	return false
}

// Section is the legacy general-purpose content row, keyed by unique Name.
// Data is a free-form JSON document encoded/decoded at the API boundary.
type Section struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Title       string          `json:"title,omitempty"`
	Subtitle    string          `json:"subtitle,omitempty"`
	Content     string          `json:"content,omitempty"`
	SectionType SectionType     `json:"sectionType"`
	Data        json.RawMessage `json:"data,omitempty"`
	IsActive    bool            `json:"isActive"`
	SortOrder   int             `json:"order"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MenuItem is one navigation entry. ParentID links children to a top-level
// item; the tree is two levels deep by construction.
type MenuItem struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Href      *string    `json:"href"`
	SortOrder int        `json:"order"`
	IsActive  bool       `json:"isActive"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MenuNode is a top-level menu item with its active children attached.
type MenuNode struct {
	MenuItem
	Children []MenuItem `json:"children"`
}

// UserRole is the admin account role.
type UserRole string

// User role constants.
const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
	RoleViewer UserRole = "viewer"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// User is an admin panel account. PasswordHash is a bcrypt hash and is never
// serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
