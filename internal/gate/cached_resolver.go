package gate

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachedResolver wraps a ProfileResolver with TTL caching so authorization
// checks don't hit the database on every request. Concurrent misses for the
// same subject collapse into a single fetch through the singleflight group.
type CachedResolver struct {
	inner ProfileResolver
	ttl   time.Duration

	mu    sync.RWMutex
	cache map[uint]*cacheEntry
	group singleflight.Group
}

type cacheEntry struct {
	profile   Profile
	expiresAt time.Time
}

func NewCachedResolver(inner ProfileResolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		inner: inner,
		ttl:   ttl,
		cache: make(map[uint]*cacheEntry),
	}
}

func (r *CachedResolver) Resolve(ctx context.Context, subjectID uint) (Profile, error) {
	r.mu.RLock()
	entry, ok := r.cache[subjectID]
	r.mu.RUnlock()

	if ok && time.Now().Before(entry.expiresAt) {
		return entry.profile, nil
	}

	v, err, _ := r.group.Do(strconv.FormatUint(uint64(subjectID), 10), func() (any, error) {
		profile, err := r.inner.Resolve(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache[subjectID] = &cacheEntry{profile: profile, expiresAt: time.Now().Add(r.ttl)}
		r.mu.Unlock()
		return profile, nil
	})
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return v.(Profile), nil
}

// Invalidate removes a subject from the cache. Call when a role assignment
// changes.
func (r *CachedResolver) Invalidate(subjectID uint) {
	r.mu.Lock()
	delete(r.cache, subjectID)
	r.mu.Unlock()
}

// InvalidateAll clears the entire cache. Call when role permissions change.
func (r *CachedResolver) InvalidateAll() {
	r.mu.Lock()
	r.cache = make(map[uint]*cacheEntry)
	r.mu.Unlock()
}
