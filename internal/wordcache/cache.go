// Package wordcache keeps a bounded pool of quiz entries per level and refills it
// from a vocabulary source when it runs low or goes stale.
package wordcache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/at-ishikawa/tango/internal/vocabulary"
)

//go:generate mockgen -source=cache.go -destination=../mocks/wordcache/mock_source.go -package=mock_wordcache Source

// Source supplies fresh entries for a level. It never fails; an empty result
// means nothing could be fetched.
type Source interface {
	FetchEntries(ctx context.Context, level vocabulary.Level) []vocabulary.Entry
}

type Config struct {
	Capacity        int
	MinEntries      int
	RefreshInterval time.Duration
}

var DefaultConfig = Config{
	Capacity:        20,
	MinEntries:      5,
	RefreshInterval: 300 * time.Second,
}

type levelState struct {
	mu          sync.Mutex
	entries     []vocabulary.Entry
	lastRefresh time.Time
}

type Cache struct {
	source Source
	config Config
	levels map[vocabulary.Level]*levelState
	group  singleflight.Group
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Cache)

func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

func New(source Source, config Config, opts ...Option) *Cache {
	if config.Capacity <= 0 {
		config.Capacity = DefaultConfig.Capacity
	}
	if config.MinEntries <= 0 {
		config.MinEntries = DefaultConfig.MinEntries
	}
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = DefaultConfig.RefreshInterval
	}

	levels := make(map[vocabulary.Level]*levelState, len(vocabulary.AllLevels))
	for _, level := range vocabulary.AllLevels {
		levels[level] = &levelState{}
	}
	c := &Cache{
		source: source,
		config: config,
		levels: levels,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "wordcache")
	return c
}

func (c *Cache) state(level vocabulary.Level) (*levelState, error) {
	state, ok := c.levels[level]
	if !ok {
		return nil, fmt.Errorf("%w: %q", vocabulary.ErrUnknownLevel, level)
	}
	return state, nil
}

// Get returns a snapshot of the entries of a level, refreshing it first when the
// pool is short, was never refreshed, or is older than the refresh interval.
func (c *Cache) Get(ctx context.Context, level vocabulary.Level) ([]vocabulary.Entry, error) {
	state, err := c.state(level)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	stale := len(state.entries) < c.config.MinEntries ||
		state.lastRefresh.IsZero() ||
		c.now().Sub(state.lastRefresh) > c.config.RefreshInterval
	state.mu.Unlock()

	if stale {
		if _, err := c.Refresh(ctx, level); err != nil {
			return nil, fmt.Errorf("c.Refresh > %w", err)
		}
	}
	return c.snapshot(state), nil
}

// Refresh fetches entries for the level and appends them to the pool.
// Concurrent refreshes of one level share a single fetch, which outlives the
// cancellation of the caller that started it. It returns the number of entries
// the fetch produced.
func (c *Cache) Refresh(ctx context.Context, level vocabulary.Level) (int, error) {
	state, err := c.state(level)
	if err != nil {
		return 0, err
	}

	fetchCtx := context.WithoutCancel(ctx)
	fetched, _, _ := c.group.Do(string(level), func() (any, error) {
		startedAt := c.now()
		entries := c.source.FetchEntries(fetchCtx, level)

		state.mu.Lock()
		defer state.mu.Unlock()
		state.entries = c.appendBounded(state.entries, entries)
		if len(entries) > 0 {
			state.lastRefresh = startedAt
		}
		c.logger.Debug("level refreshed", "level", level, "fetched", len(entries), "size", len(state.entries))
		return len(entries), nil
	})
	return fetched.(int), nil
}

// Append adds entries to the level, dropping the oldest ones beyond capacity.
func (c *Cache) Append(level vocabulary.Level, entries ...vocabulary.Entry) error {
	state, err := c.state(level)
	if err != nil {
		return err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.entries = c.appendBounded(state.entries, entries)
	return nil
}

func (c *Cache) appendBounded(current, added []vocabulary.Entry) []vocabulary.Entry {
	merged := append(current, added...)
	if overflow := len(merged) - c.config.Capacity; overflow > 0 {
		bounded := make([]vocabulary.Entry, c.config.Capacity)
		copy(bounded, merged[overflow:])
		return bounded
	}
	return merged
}

// Remove drops the first entry with the identifier. It reports whether one was found.
func (c *Cache) Remove(level vocabulary.Level, id string) bool {
	state, err := c.state(level)
	if err != nil {
		return false
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	for i, entry := range state.entries {
		if entry.ID == id {
			state.entries = append(state.entries[:i:i], state.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cache) Find(level vocabulary.Level, id string) (vocabulary.Entry, bool) {
	state, err := c.state(level)
	if err != nil {
		return vocabulary.Entry{}, false
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	for _, entry := range state.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return vocabulary.Entry{}, false
}

func (c *Cache) Len(level vocabulary.Level) int {
	state, err := c.state(level)
	if err != nil {
		return 0
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return len(state.entries)
}

// LastRefresh returns when the last productive refresh of the level started.
func (c *Cache) LastRefresh(level vocabulary.Level) time.Time {
	state, err := c.state(level)
	if err != nil {
		return time.Time{}
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.lastRefresh
}

func (c *Cache) snapshot(state *levelState) []vocabulary.Entry {
	state.mu.Lock()
	defer state.mu.Unlock()
	entries := make([]vocabulary.Entry, len(state.entries))
	copy(entries, state.entries)
	return entries
}
