package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"ivy_homes/internal/catalog"
	"ivy_homes/internal/domain"
)

// Engine answers buyer queries against the loaded catalog in a single pass.
// The matching is deliberately plain and is part of the observable contract:
// results are the first N matches in catalog load order, not a ranked top-N,
// and no criteria combination can fail. Nonsensical bounds (min > max)
// simply match nothing.
type Engine struct {
	cat *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine { return &Engine{cat: cat} }

var _ domain.Inventory = (*Engine)(nil)

// Search collects up to limit matches, stopping as soon as the cap is hit.
func (e *Engine) Search(_ context.Context, c domain.SearchCriteria, limit int) ([]domain.Property, error) {
	results := []domain.Property{}
	if limit <= 0 {
		return results, nil
	}
	for _, p := range e.cat.Properties() {
		if !matches(p, c) {
			continue
		}
		results = append(results, p)
		if len(results) >= limit {
			break
		}
	}
	log.Debug().Int("matches", len(results)).Int("catalog", e.cat.Len()).Msg("property search")
	return results, nil
}

// GetByID scans for exact, case-sensitive identifier equality. Ids are
// unique by convention, not enforcement; first occurrence wins.
func (e *Engine) GetByID(_ context.Context, id string) (domain.Property, error) {
	for _, p := range e.cat.Properties() {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Property{}, domain.ErrNotFound
}

// matches ANDs every supplied predicate. A nil predicate constrains nothing;
// a missing record field reads as its zero default, so a positive MinPrice
// excludes records with no price.
func matches(p domain.Property, c domain.SearchCriteria) bool {
	if c.Location != nil {
		hay := strings.ToLower(p.CityName() + " " + p.NeighborhoodName() + " " + p.AddressLine())
		if !strings.Contains(hay, strings.ToLower(*c.Location)) {
			return false
		}
	}
	if c.PropertyType != nil && !strings.EqualFold(p.TypeName(), *c.PropertyType) {
		return false
	}
	if c.MinPrice != nil && p.PriceValue() < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.PriceValue() > *c.MaxPrice {
		return false
	}
	if c.Bedrooms != nil && p.BedroomCount() != *c.Bedrooms {
		return false
	}
	if c.Bathrooms != nil && p.BathroomCount() != *c.Bathrooms {
		return false
	}
	return true
}
