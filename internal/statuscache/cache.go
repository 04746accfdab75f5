package statuscache

import (
	"context"
	"sync"
	"time"

	"github.com/Yiling-J/theine-go"

	"github.com/i-fetch/p2pvault/pkg/kycflow"
)

const size = 1000

// Cache is an in-memory versioned status store keyed by user ID. Both the
// poller and the submit path write through Apply; a write carrying a stale
// observed version is discarded, which keeps a slow poll response from
// overwriting an optimistic post-submit update.
type Cache struct {
	mu     sync.Mutex
	client *theine.Cache[string, kycflow.Entry]
}

func New(maxSize int64) (*Cache, error) {
	if maxSize <= 0 {
		maxSize = size
	}
	client, err := theine.NewBuilder[string, kycflow.Entry](maxSize).Build()
	if err != nil {
		return nil, err
	}
	return &Cache{client: client}, nil
}

func (c *Cache) Get(ctx context.Context, userID string) (kycflow.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client.Get(userID)
}

// Apply writes a new status if observed is still the current version and
// returns the resulting entry. When the write loses the race the current
// entry is returned with applied=false.
func (c *Cache) Apply(ctx context.Context, userID string, status kycflow.Status, raw string, observed uint64) (kycflow.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, _ := c.client.Get(userID)
	if observed < current.Version {
		return current, false
	}

	next := kycflow.Entry{
		Status:    status,
		Raw:       raw,
		Version:   current.Version + 1,
		UpdatedAt: time.Now(),
	}
	c.client.Set(userID, next, 0)
	return next, true
}

// Remove drops a user's cached status, e.g. on logout.
func (c *Cache) Remove(ctx context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.client.Delete(userID)
}
