// Package memory keeps meetings in process memory. Nothing here is durable:
// a restart loses every list and replicas do not share state.
package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-scheduler/internal/meeting"
)

const (
	DefaultMaxOwners = 1000
	DefaultTTL       = 24 * time.Hour
)

// Config bounds the store.
type Config struct {
	// MaxOwners is how many users' lists are kept before the least recently
	// used one is dropped.
	MaxOwners int
	// TTL drops a user's list this long after its last write.
	TTL time.Duration
}

type implRepository struct {
	mu     sync.Mutex
	owners *expirable.LRU[string, []meeting.Meeting]
}

// New creates an in-memory meeting repository.
func New(cfg Config) *implRepository {
	if cfg.MaxOwners <= 0 {
		cfg.MaxOwners = DefaultMaxOwners
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &implRepository{
		owners: expirable.NewLRU[string, []meeting.Meeting](cfg.MaxOwners, nil, cfg.TTL),
	}
}
