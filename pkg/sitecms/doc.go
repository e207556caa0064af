// Package sitecms implements the content layer behind the marketing site and
// its admin panel: singleton content sections with atomic upsert semantics,
// key/value site configuration, a two-level navigation menu, admin users, and
// the aggregated site snapshot served to the public pages.
//
// Construct a Service with a Repository:
//
//	svc, err := sitecms.New(sitecms.WithRepository(memory.New()))
//
// Repositories are provided for in-memory use (tests, development) and
// PostgreSQL. The singleton invariant (at most one row per section kind) is
// enforced by the repositories themselves, not by check-then-act logic, so
// concurrent saves to the same section cannot create duplicates.
package sitecms
