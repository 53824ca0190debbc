package dictionary

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/at-ishikawa/tango/internal/dictionary/jisho"
	"github.com/at-ishikawa/tango/internal/vocabulary"
)

const (
	maxAcceptedEntries = 20
	minAcceptedEntries = 4
	maxSearchPage      = 5
	fetchTimeout       = 10 * time.Second
)

//go:generate mockgen -source=fetcher.go -destination=../mocks/dictionary/mock_searcher.go -package=mock_dictionary Searcher

// Searcher returns one page of dictionary search results.
type Searcher interface {
	Search(ctx context.Context, keyword string, page int) (jisho.Response, error)
}

// Fetcher draws a random page of words of a level from the remote dictionary.
type Fetcher struct {
	searcher   Searcher
	normalizer *vocabulary.Normalizer
	fallback   []vocabulary.Entry
	logger     *slog.Logger

	// randomPage returns a page number in [1, maxSearchPage].
	randomPage func() int
}

type FetcherOption func(*Fetcher)

func WithLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

func WithRandomPage(randomPage func() int) FetcherOption {
	return func(f *Fetcher) {
		f.randomPage = randomPage
	}
}

func NewFetcher(searcher Searcher, normalizer *vocabulary.Normalizer, fallback []vocabulary.Entry, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		searcher:   searcher,
		normalizer: normalizer,
		fallback:   fallback,
		logger:     slog.Default(),
		randomPage: func() int {
			return rand.IntN(maxSearchPage) + 1
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("component", "fetcher")
	return f
}

// FetchEntries never fails. When the dictionary is unavailable or yields too few
// usable words, the fallback entries are returned instead.
func (f *Fetcher) FetchEntries(ctx context.Context, level vocabulary.Level) []vocabulary.Entry {
	keyword := level.QueryKeyword()
	page := f.randomPage()

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	response, err := f.searcher.Search(ctx, keyword, page)
	if err != nil {
		f.logger.Warn("dictionary search failed, using fallback words",
			"level", level, "keyword", keyword, "page", page, "error", err)
		return f.fallbackEntries()
	}

	entries := make([]vocabulary.Entry, 0, maxAcceptedEntries)
	for _, item := range response.Data {
		if len(entries) >= maxAcceptedEntries {
			break
		}
		if !item.HasReading() {
			continue
		}
		entry, err := f.normalizer.Normalize(item.ToRawRecord())
		if err != nil {
			f.logger.Debug("skip dictionary item", "slug", item.Slug, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	f.logger.Debug("dictionary search",
		"level", level, "keyword", keyword, "page", page,
		"items", len(response.Data), "accepted", len(entries))

	if len(entries) < minAcceptedEntries {
		f.logger.Warn("too few usable words, using fallback words",
			"level", level, "page", page, "accepted", len(entries))
		return f.fallbackEntries()
	}
	return entries
}

func (f *Fetcher) fallbackEntries() []vocabulary.Entry {
	entries := make([]vocabulary.Entry, len(f.fallback))
	copy(entries, f.fallback)
	return entries
}
