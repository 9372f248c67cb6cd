package domain

import (
	"context"
	"errors"
)

// ErrNotFound signals a lookup miss. A miss is an expected outcome, not a
// failure; callers turn it into a polite spoken sentence.
var ErrNotFound = errors.New("inventory: property not found")

// PropertySource loads the full catalog from wherever records live (local
// JSON document today, relational table for production setups).
type PropertySource interface {
	Load(ctx context.Context) ([]Property, error)
}

// Inventory is the query surface the tool layer talks to. The in-memory
// engine is the primary implementation; a remote inventory API can stand in
// behind the same contract.
type Inventory interface {
	Search(ctx context.Context, c SearchCriteria, limit int) ([]Property, error)
	GetByID(ctx context.Context, id string) (Property, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
