package tools

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"ivy_homes/internal/adapters/observability"
	"ivy_homes/internal/domain"
	"ivy_homes/internal/speech"
)

// SearchProperties is the search_properties tool: structured buyer criteria
// in, one spoken summary out.
type SearchProperties struct {
	inv       domain.Inventory
	formatter *speech.Formatter
	cache     domain.Cache // optional; nil disables response caching
	cacheTTL  time.Duration
	resultCap int
}

func NewSearchProperties(inv domain.Inventory, f *speech.Formatter, cache domain.Cache, ttl time.Duration, resultCap int) *SearchProperties {
	if resultCap <= 0 {
		resultCap = 5
	}
	return &SearchProperties{inv: inv, formatter: f, cache: cache, cacheTTL: ttl, resultCap: resultCap}
}

func (t *SearchProperties) Name() string { return "search_properties" }

func (t *SearchProperties) Description() string {
	return "Search the property inventory by location, type, price range, bedrooms, and bathrooms. All criteria are optional. Returns a spoken summary of the matching listings."
}

func (t *SearchProperties) Parameters() []Parameter {
	return []Parameter{
		{Name: "location", Type: "string", Description: "City, neighborhood, or area to match", Required: false},
		{Name: "property_type", Type: "string", Description: "Type like house, apartment, condo, or commercial", Required: false},
		{Name: "min_price", Type: "number", Description: "Minimum price, inclusive", Required: false},
		{Name: "max_price", Type: "number", Description: "Maximum price, inclusive", Required: false},
		{Name: "bedrooms", Type: "integer", Description: "Exact number of bedrooms", Required: false},
		{Name: "bathrooms", Type: "integer", Description: "Exact number of bathrooms", Required: false},
	}
}

func (t *SearchProperties) Execute(ctx context.Context, args map[string]any) (string, error) {
	start := time.Now()

	c, err := parseCriteria(args)
	if err != nil {
		observability.ObserveTool(t.Name(), "bad_args", time.Since(start))
		return "", err
	}

	key := criteriaKey(c, t.resultCap)
	if t.cache != nil {
		var cached string
		if ok, _ := t.cache.Get(ctx, key, &cached); ok {
			observability.ObserveTool(t.Name(), "ok", time.Since(start))
			return cached, nil
		}
	}

	props, err := t.inv.Search(ctx, c, t.resultCap)
	if err != nil {
		// An unreachable inventory must not reach the conversation; the
		// apology sentence is the bounded fallback.
		log.Warn().Err(err).Msg("inventory search failed, returning empty result")
		observability.ObserveTool(t.Name(), "degraded", time.Since(start))
		return t.formatter.Summarize(nil), nil
	}

	text := t.formatter.Summarize(props)
	if t.cache != nil {
		_ = t.cache.Set(ctx, key, text, int(t.cacheTTL.Seconds()))
	}

	outcome := "ok"
	if len(props) == 0 {
		outcome = "empty"
	}
	observability.ObserveTool(t.Name(), outcome, time.Since(start))
	return text, nil
}

func parseCriteria(args map[string]any) (domain.SearchCriteria, error) {
	var c domain.SearchCriteria
	var err error
	if c.Location, err = optString(args, "location"); err != nil {
		return c, err
	}
	if c.PropertyType, err = optString(args, "property_type"); err != nil {
		return c, err
	}
	if c.MinPrice, err = optFloat(args, "min_price"); err != nil {
		return c, err
	}
	if c.MaxPrice, err = optFloat(args, "max_price"); err != nil {
		return c, err
	}
	if c.Bedrooms, err = optInt(args, "bedrooms"); err != nil {
		return c, err
	}
	if c.Bathrooms, err = optInt(args, "bathrooms"); err != nil {
		return c, err
	}
	return c, nil
}

// criteriaKey hashes the normalized criteria so equivalent searches share a
// cache entry.
func criteriaKey(c domain.SearchCriteria, resultCap int) string {
	parts := []string{
		lower(c.Location), lower(c.PropertyType),
		num(c.MinPrice), num(c.MaxPrice),
		cnt(c.Bedrooms), cnt(c.Bathrooms),
		fmt.Sprintf("%d", resultCap),
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return "search:" + hex.EncodeToString(sum[:])
}

func lower(p *string) string {
	if p == nil {
		return ""
	}
	return strings.ToLower(*p)
}

func num(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%g", *p)
}

func cnt(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", *p)
}
