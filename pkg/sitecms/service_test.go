package sitecms_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alsalamah/sitecms/pkg/sitecms"
	"github.com/alsalamah/sitecms/pkg/sitecms/repo/memory"
)

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []sitecms.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []sitecms.Option{},
			expectError: true,
		},
		{
			name: "with repository should succeed",
			options: []sitecms.Option{
				sitecms.WithRepository(memory.New()),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := sitecms.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func setupTestService(t *testing.T) sitecms.Service {
	t.Helper()

	svc, err := sitecms.New(
		sitecms.WithRepository(memory.New()),
		sitecms.WithBcryptCost(bcrypt.MinCost),
	)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return svc
}

func TestSiteSectionOperations(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("GetAbsentSectionReturnsNil", func(t *testing.T) {
		section, err := svc.GetSiteSection(ctx, sitecms.SectionHero)
		assert.NoError(t, err)
		assert.Nil(t, section)
	})

	t.Run("SaveCreatesOnFirstWrite", func(t *testing.T) {
		saved, err := svc.SaveSiteSection(ctx, sitecms.SaveSectionRequest{
			Kind:    sitecms.SectionHero,
			Payload: json.RawMessage(`{"title":"A","subtitle":"B","yearText":"Y","scrollText":"S"}`),
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, sitecms.SectionHero, saved.Kind)

		var payload sitecms.HeroPayload
		require.NoError(t, json.Unmarshal(saved.Payload, &payload))
		assert.Equal(t, "A", payload.Title)
		assert.Equal(t, "Y", payload.YearText)
	})

	t.Run("SecondSaveUpdatesInPlace", func(t *testing.T) {
		first, err := svc.GetSiteSection(ctx, sitecms.SectionHero)
		require.NoError(t, err)
		require.NotNil(t, first)

		saved, err := svc.SaveSiteSection(ctx, sitecms.SaveSectionRequest{
			Kind:    sitecms.SectionHero,
			Payload: json.RawMessage(`{"title":"A2","subtitle":"B","yearText":"Y","scrollText":"S"}`),
		})
		require.NoError(t, err)

		// Same row: identity and creation time survive the update.
		assert.Equal(t, first.ID, saved.ID)
		assert.Equal(t, first.CreatedAt, saved.CreatedAt)

		got, err := svc.GetSiteSection(ctx, sitecms.SectionHero)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.ID, got.ID)

		var payload sitecms.HeroPayload
		require.NoError(t, json.Unmarshal(got.Payload, &payload))
		assert.Equal(t, "A2", payload.Title)
	})

	t.Run("IdempotentSave", func(t *testing.T) {
		body := json.RawMessage(`{"services":[{"title":"Freight","description":"d","icon":"truck"}]}`)

		first, err := svc.SaveSiteSection(ctx, sitecms.SaveSectionRequest{Kind: sitecms.SectionServices, Payload: body})
		require.NoError(t, err)
		second, err := svc.SaveSiteSection(ctx, sitecms.SaveSectionRequest{Kind: sitecms.SectionServices, Payload: body})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.JSONEq(t, string(first.Payload), string(second.Payload))
	})

	t.Run("RoundTripPreservesOrder", func(t *testing.T) {
		body := json.RawMessage(`{"stats":[{"value":"1000+","label":"Happy Customers"},{"value":"99%","label":"On-Time Delivery"},{"value":"24/7","label":"Customer Support"}]}`)
		_, err := svc.SaveSiteSection(ctx, sitecms.SaveSectionRequest{Kind: sitecms.SectionStats, Payload: body})
		require.NoError(t, err)

		got, err := svc.GetSiteSection(ctx, sitecms.SectionStats)
		require.NoError(t, err)
		require.NotNil(t, got)

		var payload sitecms.StatsPayload
		require.NoError(t, json.Unmarshal(got.Payload, &payload))
		require.Len(t, payload.Stats, 3)
		assert.Equal(t, "Happy Customers", payload.Stats[0].Label)
		assert.Equal(t, "99%", payload.Stats[1].Value)
		assert.Equal(t, "Customer Support", payload.Stats[2].Label)
	})

	t.Run("InvalidKindRejected", func(t *testing.T) {
		_, err := svc.SaveSiteSection(ctx, sitecms.SaveSectionRequest{
			Kind:    sitecms.SectionKind("banner"),
			Payload: json.RawMessage(`{}`),
		})
		assert.ErrorIs(t, err, sitecms.ErrInvalidSectionKind)

		_, err = svc.GetSiteSection(ctx, sitecms.SectionKind("banner"))
		assert.ErrorIs(t, err, sitecms.ErrInvalidSectionKind)
	})

	t.Run("MalformedPayloadRejected", func(t *testing.T) {
		_, err := svc.SaveSiteSection(ctx, sitecms.SaveSectionRequest{
			Kind:    sitecms.SectionHero,
			Payload: json.RawMessage(`{"title":123}`),
		})
		assert.ErrorIs(t, err, sitecms.ErrInvalidPayload)
	})
}

func TestSiteConfigOperations(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	cfg, err := svc.GetSiteConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	saved, err := svc.SaveSiteConfig(ctx, sitecms.SaveSiteConfigRequest{
		CompanyName:     "Al Salamah Transportation",
		ParentCompany:   "SBTG",
		Tagline:         "Driving Reliable Distribution",
		HeadOfficeEmail: "info@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	updated, err := svc.SaveSiteConfig(ctx, sitecms.SaveSiteConfigRequest{
		CompanyName: "AST",
	})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "AST", updated.CompanyName)

	got, err := svc.GetSiteConfig(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "AST", got.CompanyName)
}

func TestConfigEntryOperations(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	entry, err := svc.GetConfigEntry(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, entry)

	_, err = svc.UpsertConfigEntry(ctx, sitecms.UpsertConfigEntryRequest{Key: "site_title", Value: "AST"})
	require.NoError(t, err)
	_, err = svc.UpsertConfigEntry(ctx, sitecms.UpsertConfigEntryRequest{Key: "site_title", Value: "AST v2"})
	require.NoError(t, err)
	_, err = svc.UpsertConfigEntry(ctx, sitecms.UpsertConfigEntryRequest{Key: "footer", Value: "f"})
	require.NoError(t, err)

	values, err := svc.ListConfigValues(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"site_title": "AST v2", "footer": "f"}, values)

	_, err = svc.UpsertConfigEntry(ctx, sitecms.UpsertConfigEntryRequest{Key: "  "})
	assert.Error(t, err)
}

func TestGenericSectionOperations(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSection(ctx, sitecms.CreateSectionRequest{
		Name:        "about",
		Title:       "About",
		SectionType: sitecms.SectionTypeAbout,
		IsActive:    true,
		SortOrder:   2,
	})
	require.NoError(t, err)

	_, err = svc.CreateSection(ctx, sitecms.CreateSectionRequest{
		Name:        "contact",
		SectionType: sitecms.SectionTypeContact,
		IsActive:    false,
		SortOrder:   1,
	})
	require.NoError(t, err)

	t.Run("DuplicateNameRejected", func(t *testing.T) {
		_, err := svc.CreateSection(ctx, sitecms.CreateSectionRequest{Name: "about", SectionType: sitecms.SectionTypeAbout})
		assert.ErrorIs(t, err, sitecms.ErrSectionNameExists)
	})

	t.Run("DefaultsToCustomType", func(t *testing.T) {
		section, err := svc.CreateSection(ctx, sitecms.CreateSectionRequest{Name: "misc"})
		require.NoError(t, err)
		assert.Equal(t, sitecms.SectionTypeCustom, section.SectionType)
	})

	t.Run("InvalidTypeRejected", func(t *testing.T) {
		_, err := svc.CreateSection(ctx, sitecms.CreateSectionRequest{Name: "x", SectionType: sitecms.SectionType("banner")})
		assert.Error(t, err)
	})

	t.Run("ListOrderedWithFilters", func(t *testing.T) {
		all, err := svc.ListSections(ctx, sitecms.SectionFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "misc", all[0].Name) // order 0
		assert.Equal(t, "contact", all[1].Name)
		assert.Equal(t, "about", all[2].Name)

		active := true
		activeOnly, err := svc.ListSections(ctx, sitecms.SectionFilter{IsActive: &active})
		require.NoError(t, err)
		require.Len(t, activeOnly, 1)
		assert.Equal(t, "about", activeOnly[0].Name)

		name := "contact"
		byName, err := svc.ListSections(ctx, sitecms.SectionFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "contact", byName[0].Name)
	})
}

func TestMenuOperations(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	home, err := svc.CreateMenuItem(ctx, sitecms.CreateMenuItemRequest{Title: "Home", SortOrder: 1, IsActive: true})
	require.NoError(t, err)
	_, err = svc.CreateMenuItem(ctx, sitecms.CreateMenuItemRequest{Title: "Hidden", SortOrder: 0, IsActive: false})
	require.NoError(t, err)

	services, err := svc.CreateMenuItem(ctx, sitecms.CreateMenuItemRequest{Title: "Services", SortOrder: 2, IsActive: true})
	require.NoError(t, err)

	parent := services.ID.String()
	_, err = svc.CreateMenuItem(ctx, sitecms.CreateMenuItemRequest{Title: "Freight", SortOrder: 2, IsActive: true, ParentID: &parent})
	require.NoError(t, err)
	_, err = svc.CreateMenuItem(ctx, sitecms.CreateMenuItemRequest{Title: "Logistics", SortOrder: 1, IsActive: true, ParentID: &parent})
	require.NoError(t, err)
	_, err = svc.CreateMenuItem(ctx, sitecms.CreateMenuItemRequest{Title: "Old", SortOrder: 0, IsActive: false, ParentID: &parent})
	require.NoError(t, err)

	menu, err := svc.ListActiveMenu(ctx)
	require.NoError(t, err)
	require.Len(t, menu, 2)

	assert.Equal(t, "Home", menu[0].Title)
	assert.Equal(t, home.ID, menu[0].ID)
	assert.Empty(t, menu[0].Children)

	assert.Equal(t, "Services", menu[1].Title)
	require.Len(t, menu[1].Children, 2)
	assert.Equal(t, "Logistics", menu[1].Children[0].Title)
	assert.Equal(t, "Freight", menu[1].Children[1].Title)

	t.Run("UnknownParentRejected", func(t *testing.T) {
		badParent := "5f8b8f64-0000-4000-8000-000000000000"
		_, err := svc.CreateMenuItem(ctx, sitecms.CreateMenuItemRequest{Title: "x", IsActive: true, ParentID: &badParent})
		assert.ErrorIs(t, err, sitecms.ErrMenuParentNotFound)
	})
}

func TestUserOperations(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, sitecms.CreateUserRequest{
		Email:    "Admin@Example.com",
		Name:     "Administrator",
		Password: "123456",
		Role:     sitecms.RoleAdmin,
		IsActive: true,
	})
	require.NoError(t, err)

	// Email normalized, password stored as a bcrypt hash.
	assert.Equal(t, "admin@example.com", user.Email)
	assert.NotEqual(t, "123456", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("123456")))

	_, err = svc.CreateUser(ctx, sitecms.CreateUserRequest{Email: "admin@example.com", Password: "x", Role: sitecms.RoleEditor})
	assert.ErrorIs(t, err, sitecms.ErrEmailExists)

	got, err := svc.GetUserByEmail(ctx, " ADMIN@example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	t.Run("DefaultsToViewerRole", func(t *testing.T) {
		u, err := svc.CreateUser(ctx, sitecms.CreateUserRequest{Email: "v@example.com", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, sitecms.RoleViewer, u.Role)
	})

	t.Run("MissingPasswordRejected", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, sitecms.CreateUserRequest{Email: "nopw@example.com"})
		assert.Error(t, err)
	})
}
