package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// NewMemory returns an in-process cache whose entries expire after ttl and are
// swept every 2*ttl.
func NewMemory(ttl time.Duration) *gocache.Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return gocache.New(ttl, 2*ttl)
}
