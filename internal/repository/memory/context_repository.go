package memory

import (
	"time"

	"github.com/maatalaayoub/L9ani-sub001/pkg/assistant"

	"github.com/patrickmn/go-cache"
)

// ContextRepository keeps per-conversation assistant state in process
// memory. Conversations that stay idle for an hour are evicted.
type ContextRepository struct {
	cache *cache.Cache
}

func NewContextRepository() *ContextRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ContextRepository{
		cache: c,
	}
}

func (r *ContextRepository) Save(conversationID string, state *assistant.Context) {
	r.cache.Set(conversationID, state, cache.DefaultExpiration)
}

func (r *ContextRepository) Get(conversationID string) (*assistant.Context, bool) {
	if x, found := r.cache.Get(conversationID); found {
		return x.(*assistant.Context), true
	}
	return nil, false
}

func (r *ContextRepository) Delete(conversationID string) {
	r.cache.Delete(conversationID)
}
