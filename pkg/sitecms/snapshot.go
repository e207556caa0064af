package sitecms

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"
)

// SiteSnapshot is the denormalized payload served to the public site. Every
// per-section field is null when that section has no persisted row; Menu is
// [] rather than null when no menu exists. Sections holds the same data keyed
// by kind, and the top-level aliases duplicate it for caller ergonomics.
type SiteSnapshot struct {
	SiteConfig *SiteConfigView           `json:"siteConfig"`
	Menu       []*MenuNode               `json:"menu"`
	Sections   map[string]map[string]any `json:"sections"`

	Hero          map[string]any `json:"hero"`
	TruckReveal   map[string]any `json:"truckReveal"`
	TruckRotation map[string]any `json:"truckRotation"`
	Services      map[string]any `json:"services"`
	Stats         map[string]any `json:"stats"`
	Showcase      map[string]any `json:"showcase"`
	Record        map[string]any `json:"record"`
	AreaCoverage  map[string]any `json:"areaCoverage"`
}

// SiteConfigView is the nested company/contact shape the renderer expects,
// reshaped from the flat site config columns.
type SiteConfigView struct {
	Company CompanyView `json:"company"`
	Contact ContactView `json:"contact"`
}

// CompanyView holds company identity fields.
type CompanyView struct {
	Name          string `json:"name"`
	ParentCompany string `json:"parentCompany"`
	Logo          string `json:"logo"`
	Tagline       string `json:"tagline"`
}

// ContactView nests the head office contact block.
type ContactView struct {
	HeadOffice HeadOfficeView `json:"headOffice"`
}

// HeadOfficeView holds head office contact fields.
type HeadOfficeView struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// GetSiteSnapshot fans out one read per section kind plus site config and the
// active menu, all concurrently, and assembles the combined response. Reads
// are independent so no ordering is imposed; the group waits for all of them.
// A missing row anywhere degrades to null instead of failing the whole call.
func (s *service) GetSiteSnapshot(ctx context.Context) (*SiteSnapshot, error) {
	var (
		sections = make([]*SiteSection, len(SectionKinds))
		cfg      *SiteConfig
		menu     []*MenuNode
	)

	g, gctx := errgroup.WithContext(ctx)

	for i, kind := range SectionKinds {
		i, kind := i, kind
		g.Go(func() error {
			section, err := s.GetSiteSection(gctx, kind)
			if err != nil {
				return err
			}
			sections[i] = section
			return nil
		})
	}

	g.Go(func() error {
		var err error
		cfg, err = s.GetSiteConfig(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		menu, err = s.ListActiveMenu(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &SiteSnapshot{
		Menu:     menu,
		Sections: make(map[string]map[string]any),
	}
	if snapshot.Menu == nil {
		snapshot.Menu = []*MenuNode{}
	}

	if cfg != nil {
		snapshot.SiteConfig = &SiteConfigView{
			Company: CompanyView{
				Name:          cfg.CompanyName,
				ParentCompany: cfg.ParentCompany,
				Logo:          cfg.LogoURL,
				Tagline:       cfg.Tagline,
			},
			Contact: ContactView{
				HeadOffice: HeadOfficeView{
					Email:   cfg.HeadOfficeEmail,
					Phone:   cfg.HeadOfficePhone,
					Address: cfg.HeadOfficeAddress,
				},
			},
		}
	}

	for i, kind := range SectionKinds {
		section := sections[i]
		if section == nil {
			continue
		}
		view := sectionSnapshotView(section)
		snapshot.Sections[string(kind)] = view

		switch kind {
		case SectionHero:
			snapshot.Hero = view
		case SectionTruckReveal:
			snapshot.TruckReveal = view
		case SectionTruckRotation:
			snapshot.TruckRotation = view
		case SectionServices:
			snapshot.Services = view
		case SectionStats:
			snapshot.Stats = view
		case SectionShowcase:
			snapshot.Showcase = view
		case SectionRecord:
			snapshot.Record = view
		case SectionCoverage:
			snapshot.AreaCoverage = view
		}
	}

	return snapshot, nil
}

// sectionSnapshotView reshapes a stored section for the renderer. Hero and
// coverage get the nested {title, subtitle, data} convenience form; every
// other kind is the persisted row with its payload fields inlined.
func sectionSnapshotView(section *SiteSection) map[string]any {
	payload := decodePayloadMap(section.Payload)

	switch section.Kind {
	case SectionHero:
		return map[string]any{
			"title":    payload["title"],
			"subtitle": payload["subtitle"],
			"data": map[string]any{
				"yearText":   payload["yearText"],
				"scrollText": payload["scrollText"],
			},
		}
	case SectionCoverage:
		return map[string]any{
			"data": map[string]any{
				"regions":      payload["regions"],
				"headquarters": payload["headquarters"],
			},
		}
	default:
		view := map[string]any{
			"id":         section.ID.String(),
			"kind":       string(section.Kind),
			"created_at": section.CreatedAt,
			"updated_at": section.UpdatedAt,
		}
		for k, v := range payload {
			view[k] = v
		}
		return view
	}
}

func decodePayloadMap(raw json.RawMessage) map[string]any {
	payload := map[string]any{}
	if len(raw) > 0 {
		// Stored payloads are normalized at write time, so this cannot fail
		// for rows written through the service.
		_ = json.Unmarshal(raw, &payload)
	}
	return payload
}
