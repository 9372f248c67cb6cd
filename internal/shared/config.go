package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// Data source selection: file | api | mysql
	DataSource string
	DataPath   string

	InventoryBase    string
	InventoryKey     string
	InventoryTimeout time.Duration

	MySQLDSN string

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	// MaxResults caps a single search; the spoken summary previews at most
	// three of them.
	MaxResults    int
	CurrencyStyle string // plain | indian

	SeedWorkers int
	SeedLimit   int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:           env("APP_ENV", "prod"),
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		MetricsAddr:      env("METRICS_ADDR", ":9100"),
		DataSource:       env("DATA_SOURCE", "file"),
		DataPath:         env("DATA_PATH", "data/properties.json"),
		InventoryBase:    env("INVENTORY_BASE_URL", ""),
		InventoryKey:     env("INVENTORY_API_KEY", ""),
		InventoryTimeout: time.Duration(atoi("INVENTORY_TIMEOUT_SECONDS", 5)) * time.Second,
		MySQLDSN:         env("MYSQL_DSN", "root:root@tcp(localhost:3306)/ivy?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:        env("REDIS_ADDR", "localhost:6379"),
		RedisPass:        env("REDIS_PASSWORD", ""),
		RedisDB:          atoi("REDIS_DB", 0),
		CacheTTL:         time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		MaxResults:       atoi("MAX_RESULTS", 5),
		CurrencyStyle:    env("CURRENCY_STYLE", "plain"),
		SeedWorkers:      atoi("SEED_WORKERS", 8),
		SeedLimit:        atoi("SEED_LIMIT", 500),
	}
	if c.DataSource == "api" && c.InventoryKey == "" {
		log.Warn().Msg("INVENTORY_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
