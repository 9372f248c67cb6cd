package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "ivy_homes/internal/adapters/http_server"
	"ivy_homes/internal/adapters/inventory"
	"ivy_homes/internal/adapters/observability"
	redisad "ivy_homes/internal/adapters/redis"
	"ivy_homes/internal/app"
	"ivy_homes/internal/catalog"
	"ivy_homes/internal/domain"
	"ivy_homes/internal/shared"
	"ivy_homes/internal/speech"
	mysqlrepo "ivy_homes/internal/storage/mysql"
	"ivy_homes/internal/tools"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// inventory: in-memory catalog for file/mysql modes, live client for api
	var inv domain.Inventory
	switch cfg.DataSource {
	case "file":
		cat := catalog.New()
		cat.Reload(ctx, catalog.NewFileSource(cfg.DataPath))
		inv = app.NewEngine(cat)

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		cat := catalog.New()
		cat.Reload(ctx, mysqlrepo.New(db))
		inv = app.NewEngine(cat)

	case "api":
		client, err := inventory.NewClient(cfg.InventoryBase, cfg.InventoryKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize inventory client")
		}
		inv = inventory.NewRemote(client, cfg.InventoryTimeout)

	default:
		log.Fatal().Str("source", cfg.DataSource).Msg("unsupported data source")
	}

	// spoken-output formatting
	var currency speech.CurrencyFormatter = speech.PlainCurrency{}
	if cfg.CurrencyStyle == "indian" {
		currency = speech.IndianCurrency{}
	}
	formatter := speech.NewFormatter(currency)

	// tools
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	registry := tools.NewRegistry()
	mustRegister(registry, tools.NewSearchProperties(inv, formatter, cache, cfg.CacheTTL, cfg.MaxResults))
	mustRegister(registry, tools.NewPropertyDetails(inv, formatter))

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Registry: registry})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("source", cfg.DataSource).
		Str("currency", cfg.CurrencyStyle).
		Msg("tool server listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func mustRegister(r *tools.Registry, t tools.Tool) {
	if err := r.Register(t); err != nil {
		log.Fatal().Err(err).Msg("tool registration failed")
	}
}
