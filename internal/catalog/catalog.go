// Package catalog holds the in-memory property collection. The collection is
// immutable once swapped in, so concurrent searches read it without locking;
// Reload replaces the whole snapshot atomically and in-flight readers keep
// the snapshot they started with.
package catalog

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"ivy_homes/internal/adapters/observability"
	"ivy_homes/internal/domain"
)

type Catalog struct {
	snap atomic.Pointer[[]domain.Property]
}

func New() *Catalog {
	c := &Catalog{}
	empty := []domain.Property{}
	c.snap.Store(&empty)
	return c
}

// Properties returns the current snapshot in load order. Callers must not
// mutate the returned slice.
func (c *Catalog) Properties() []domain.Property { return *c.snap.Load() }

func (c *Catalog) Len() int { return len(*c.snap.Load()) }

// Reload pulls a fresh collection from the source and swaps it in. Any load
// failure degrades to an empty catalog: an unhelpful answer is acceptable, a
// crashed conversation is not.
func (c *Catalog) Reload(ctx context.Context, src domain.PropertySource) {
	props, err := src.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog load failed, serving empty catalog")
		observability.ObserveCatalogReload("error")
		props = []domain.Property{}
	} else {
		observability.ObserveCatalogReload("ok")
	}
	c.snap.Store(&props)
	observability.SetCatalogSize(len(props))
	log.Info().Int("properties", len(props)).Msg("catalog loaded")
}
