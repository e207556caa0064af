package sitecms

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrSectionNotFound indicates a singleton section has no persisted row.
	// Absence is a valid state for callers; the service maps it to nil.
	ErrSectionNotFound = errors.New("section not found")

	// ErrSiteConfigNotFound indicates the site configuration row does not exist yet.
	ErrSiteConfigNotFound = errors.New("site config not found")

	// ErrConfigEntryNotFound indicates a key/value config entry was not found.
	ErrConfigEntryNotFound = errors.New("config entry not found")

	// ErrUserNotFound indicates a user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrSectionNameExists indicates a generic section with the same name already exists.
	ErrSectionNameExists = errors.New("section name already exists")

	// ErrEmailExists indicates a user with the same email already exists.
	ErrEmailExists = errors.New("email already exists")

	// ErrMenuParentNotFound indicates the referenced parent menu item does not exist.
	ErrMenuParentNotFound = errors.New("parent menu item not found")

	// ErrInvalidSectionKind indicates an unknown singleton section kind.
	ErrInvalidSectionKind = errors.New("invalid section kind")

	// ErrInvalidPayload indicates a section payload does not match the shape
	// required for its kind.
	ErrInvalidPayload = errors.New("invalid section payload")
)

// SectionError represents an error related to singleton section operations.
type SectionError struct {
	Kind SectionKind
	Op   string
	Err  error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section operation %s failed for %s: %v", e.Op, e.Kind, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error related to configuration operations.
type ConfigError struct {
	Key string
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config operation %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("config operation %s failed for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
