package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsalamah/sitecms/pkg/sitecms"
)

func TestSiteSectionSingleton(t *testing.T) {
	RunTest(t, func(t *testing.T, db *TestDB) {
		ctx := context.Background()

		_, err := db.Repo.GetSiteSection(ctx, sitecms.SectionHero)
		assert.ErrorIs(t, err, sitecms.ErrSectionNotFound)

		now := time.Now().UTC()
		first, err := db.Repo.UpsertSiteSection(ctx, &sitecms.SiteSection{
			ID:        uuid.New(),
			Kind:      sitecms.SectionHero,
			Payload:   json.RawMessage(`{"title":"A"}`),
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)

		second, err := db.Repo.UpsertSiteSection(ctx, &sitecms.SiteSection{
			ID:        uuid.New(),
			Kind:      sitecms.SectionHero,
			Payload:   json.RawMessage(`{"title":"A2"}`),
			CreatedAt: now.Add(time.Minute),
			UpdatedAt: now.Add(time.Minute),
		})
		require.NoError(t, err)

		// The unique kind constraint turns the second insert into an update.
		assert.Equal(t, first.ID, second.ID)

		var count int
		err = db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM site_sections WHERE kind = $1", sitecms.SectionHero).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := db.Repo.GetSiteSection(ctx, sitecms.SectionHero)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"A2"}`, string(got.Payload))
	})
}

func TestSiteConfigSingleton(t *testing.T) {
	RunTest(t, func(t *testing.T, db *TestDB) {
		ctx := context.Background()

		_, err := db.Repo.GetSiteConfig(ctx)
		assert.ErrorIs(t, err, sitecms.ErrSiteConfigNotFound)

		now := time.Now().UTC()
		first, err := db.Repo.UpsertSiteConfig(ctx, &sitecms.SiteConfig{
			CompanyName: "AST",
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		require.NoError(t, err)

		second, err := db.Repo.UpsertSiteConfig(ctx, &sitecms.SiteConfig{
			CompanyName: "AST v2",
			CreatedAt:   now,
			UpdatedAt:   now.Add(time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		var count int
		err = db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM site_config").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestConfigEntryUpsert(t *testing.T) {
	RunTest(t, func(t *testing.T, db *TestDB) {
		ctx := context.Background()
		now := time.Now().UTC()

		_, err := db.Repo.UpsertConfigEntry(ctx, &sitecms.ConfigEntry{
			ID: uuid.New(), Key: "site_title", Value: "v1", CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)
		_, err = db.Repo.UpsertConfigEntry(ctx, &sitecms.ConfigEntry{
			ID: uuid.New(), Key: "site_title", Value: "v2", CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)

		entries, err := db.Repo.ListConfigEntries(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "v2", entries[0].Value)
	})
}

func TestSectionNameUnique(t *testing.T) {
	RunTest(t, func(t *testing.T, db *TestDB) {
		ctx := context.Background()
		now := time.Now().UTC()

		err := db.Repo.CreateSection(ctx, &sitecms.Section{
			ID: uuid.New(), Name: "about", SectionType: sitecms.SectionTypeAbout,
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)

		err = db.Repo.CreateSection(ctx, &sitecms.Section{
			ID: uuid.New(), Name: "about", SectionType: sitecms.SectionTypeAbout,
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		})
		assert.ErrorIs(t, err, sitecms.ErrSectionNameExists)
	})
}

func TestMenuParentConstraint(t *testing.T) {
	RunTest(t, func(t *testing.T, db *TestDB) {
		ctx := context.Background()
		now := time.Now().UTC()

		missing := uuid.New()
		err := db.Repo.CreateMenuItem(ctx, &sitecms.MenuItem{
			ID: uuid.New(), Title: "orphan", IsActive: true, ParentID: &missing,
			CreatedAt: now, UpdatedAt: now,
		})
		assert.ErrorIs(t, err, sitecms.ErrMenuParentNotFound)

		parent := &sitecms.MenuItem{ID: uuid.New(), Title: "Services", IsActive: true, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, db.Repo.CreateMenuItem(ctx, parent))
		require.NoError(t, db.Repo.CreateMenuItem(ctx, &sitecms.MenuItem{
			ID: uuid.New(), Title: "Freight", IsActive: false, ParentID: &parent.ID,
			CreatedAt: now, UpdatedAt: now,
		}))

		activeOnly, err := db.Repo.ListMenuItems(ctx, true)
		require.NoError(t, err)
		assert.Len(t, activeOnly, 1)

		all, err := db.Repo.ListMenuItems(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestUserEmailUnique(t *testing.T) {
	RunTest(t, func(t *testing.T, db *TestDB) {
		ctx := context.Background()
		now := time.Now().UTC()

		user := &sitecms.User{
			ID: uuid.New(), Email: "admin@example.com", PasswordHash: "x",
			Role: sitecms.RoleAdmin, IsActive: true, CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, db.Repo.CreateUser(ctx, user))

		err := db.Repo.CreateUser(ctx, &sitecms.User{
			ID: uuid.New(), Email: "admin@example.com", PasswordHash: "y",
			Role: sitecms.RoleViewer, IsActive: true, CreatedAt: now, UpdatedAt: now,
		})
		assert.ErrorIs(t, err, sitecms.ErrEmailExists)

		got, err := db.Repo.GetUserByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})
}
