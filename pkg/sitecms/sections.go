package sitecms

import (
	"encoding/json"
	"fmt"
)

// NormalizeSectionPayload validates a raw payload against the typed document
// for the given kind and re-encodes it. Unknown fields are dropped and field
// types are checked, so stored payloads always match the published shape.
func NormalizeSectionPayload(kind SectionKind, raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload for %s", ErrInvalidPayload, kind)
	}

	doc, err := decodeSectionPayload(kind, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return normalized, nil
}

func decodeSectionPayload(kind SectionKind, raw json.RawMessage) (interface{}, error) {
	switch kind {
	case SectionHero:
		var p HeroPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return &p, nil
	case SectionServices:
		var p ServicesPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		if p.Services == nil {
			p.Services = []ServiceItem{}
		}
		return &p, nil
	case SectionStats:
		var p StatsPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		if p.Stats == nil {
			p.Stats = []StatItem{}
		}
		return &p, nil
	case SectionShowcase:
		var p ShowcasePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		if p.Images == nil {
			p.Images = []ShowcaseImage{}
		}
		if p.Features == nil {
			p.Features = []ServiceItem{}
		}
		return &p, nil
	case SectionRecord:
		var p RecordPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		if p.Features == nil {
			p.Features = []RecordFeature{}
		}
		return &p, nil
	case SectionTruckReveal:
		var p TruckRevealPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return &p, nil
	case SectionTruckRotation:
		var p TruckRotationPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		if p.Sections == nil {
			p.Sections = []RotationSlide{}
		}
		return &p, nil
	case SectionCoverage:
		var p CoveragePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		if p.Regions == nil {
			p.Regions = []CoverageRegion{}
		}
		return &p, nil
	default:
		return nil, fmt.Errorf("unknown section kind %q", kind)
	}
}
