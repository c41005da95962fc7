// Package cache is the advisory cache for derived counts (works, bookmarks,
// subscriptions). Values are time-boxed and may be briefly stale; nothing in
// the authorization core depends on them for correctness.
package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Entry is a cached value with its freshness horizon. Backends keep entries
// a raceWindow past FreshUntil so stale values can be served while one
// caller refreshes.
type Entry struct {
	Value      int64     `json:"v"`
	FreshUntil time.Time `json:"fresh_until"`
}

// Backend is a key-value store for entries.
type Backend interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, e Entry, keepFor time.Duration) error
}

// Counts caches computed counts with dogpile suppression: concurrent misses
// for one key collapse into a single compute, and entries stale by less than
// the race window are served as-is while a background refresh runs.
type Counts struct {
	backend Backend
	group   singleflight.Group
}

func NewCounts(backend Backend) *Counts {
	return &Counts{backend: backend}
}

// Fetch returns the cached value for key, computing it when missing or too
// stale. ttl is the freshness horizon, raceWindow the extra time a stale
// value may still be served while one caller recomputes.
func (c *Counts) Fetch(ctx context.Context, key string, ttl, raceWindow time.Duration, compute func(context.Context) (int64, error)) (int64, error) {
	e, ok, err := c.backend.Get(ctx, key)
	if err == nil && ok {
		now := time.Now()
		if now.Before(e.FreshUntil) {
			return e.Value, nil
		}
		if now.Before(e.FreshUntil.Add(raceWindow)) {
			go func() {
				// The refresh outlives the request; detach from its
				// cancellation. Singleflight keeps it to one worker.
				bg := context.WithoutCancel(ctx)
				_, _, _ = c.group.Do(key, func() (any, error) {
					return c.computeAndStore(bg, key, ttl, raceWindow, compute)
				})
			}()
			return e.Value, nil
		}
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.computeAndStore(ctx, key, ttl, raceWindow, compute)
	})
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

func (c *Counts) computeAndStore(ctx context.Context, key string, ttl, raceWindow time.Duration, compute func(context.Context) (int64, error)) (int64, error) {
	v, err := compute(ctx)
	if err != nil {
		return 0, err
	}
	e := Entry{Value: v, FreshUntil: time.Now().Add(ttl)}
	// A failed store only costs a recompute next time.
	_ = c.backend.Set(ctx, key, e, ttl+raceWindow)
	return v, nil
}
