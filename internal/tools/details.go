package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"ivy_homes/internal/adapters/observability"
	"ivy_homes/internal/domain"
	"ivy_homes/internal/speech"
)

// PropertyDetails is the get_property_details tool: one identifier in, one
// spoken description out. A miss is an expected outcome and comes back as a
// polite sentence, never an error.
type PropertyDetails struct {
	inv       domain.Inventory
	formatter *speech.Formatter
}

func NewPropertyDetails(inv domain.Inventory, f *speech.Formatter) *PropertyDetails {
	return &PropertyDetails{inv: inv, formatter: f}
}

func (t *PropertyDetails) Name() string { return "get_property_details" }

func (t *PropertyDetails) Description() string {
	return "Get the full spoken description of a single property by its listing ID."
}

func (t *PropertyDetails) Parameters() []Parameter {
	return []Parameter{
		{Name: "property_id", Type: "string", Description: "Unique property identifier", Required: true},
	}
}

func (t *PropertyDetails) Execute(ctx context.Context, args map[string]any) (string, error) {
	start := time.Now()

	id, err := optString(args, "property_id")
	if err != nil {
		observability.ObserveTool(t.Name(), "bad_args", time.Since(start))
		return "", err
	}
	if id == nil {
		observability.ObserveTool(t.Name(), "bad_args", time.Since(start))
		return "", fmt.Errorf("argument %q is required", "property_id")
	}

	p, err := t.inv.GetByID(ctx, *id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		observability.ObserveTool(t.Name(), "not_found", time.Since(start))
		return speech.NotFound(*id), nil
	case err != nil:
		log.Warn().Err(err).Str("property_id", *id).Msg("inventory lookup failed")
		observability.ObserveTool(t.Name(), "degraded", time.Since(start))
		return speech.NotFound(*id), nil
	}

	observability.ObserveTool(t.Name(), "ok", time.Since(start))
	return t.formatter.Describe(p), nil
}
