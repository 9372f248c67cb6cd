// The seeder pulls the remote inventory into MySQL so the agent can run in
// mysql mode without calling the inventory API on every conversation.
package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"ivy_homes/internal/adapters/inventory"
	"ivy_homes/internal/adapters/observability"
	"ivy_homes/internal/domain"
	"ivy_homes/internal/shared"
	mysqlrepo "ivy_homes/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.InventoryBase).
		Int("workers", cfg.SeedWorkers).
		Int("limit", cfg.SeedLimit).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := inventory.NewClient(cfg.InventoryBase, cfg.InventoryKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize inventory client")
	}

	// list first; an unconstrained search returns the catalog in source order
	listings, err := client.SearchProperties(ctx, domain.SearchCriteria{}, cfg.SeedLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("inventory listing failed")
	}
	log.Info().Int("listings", len(listings)).Msg("inventory listed")

	// then fetch full details per listing, a few at a time
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, listing := range listings {
		id := listing.ID

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(propertyID string) {
			defer wg.Done()
			defer sem.Release(1)

			p, err := client.GetProperty(ctx, propertyID)
			if err != nil {
				log.Warn().Str("id", propertyID).Err(err).Msg("detail fetch failed")
				return
			}
			if err := repo.UpsertProperty(ctx, p); err != nil {
				log.Warn().Str("id", propertyID).Err(err).Msg("upsert failed")
				return
			}
			log.Info().Str("id", propertyID).Msg("seeded")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
