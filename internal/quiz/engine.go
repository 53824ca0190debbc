// Package quiz draws prompts from the level cache and grades answers.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/at-ishikawa/tango/internal/vocabulary"
)

var (
	ErrNoWordsAvailable = errors.New("no words available")
	ErrInvalidEntry     = errors.New("invalid word ID")
)

// Prompt is one question. Answers are matched by Entry.ID.
type Prompt struct {
	Entry     vocabulary.Entry
	Mode      vocabulary.Mode
	Remaining int
}

type Result struct {
	Correct bool
	// Answer is the stored value of the field the mode asked for.
	Answer    string
	Remaining int
}

// Cache is the part of the level cache the engine needs.
type Cache interface {
	Get(ctx context.Context, level vocabulary.Level) ([]vocabulary.Entry, error)
	Refresh(ctx context.Context, level vocabulary.Level) (int, error)
	Find(level vocabulary.Level, id string) (vocabulary.Entry, bool)
	Remove(level vocabulary.Level, id string) bool
	Len(level vocabulary.Level) int
}

type Engine struct {
	cache  Cache
	intN   func(n int) int
	logger *slog.Logger
}

type Option func(*Engine)

// WithIntN replaces the source of uniform random numbers in [0, n).
func WithIntN(intN func(n int) int) Option {
	return func(e *Engine) {
		e.intN = intN
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func NewEngine(cache Cache, opts ...Option) *Engine {
	e := &Engine{
		cache:  cache,
		intN:   rand.IntN,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "quiz")
	return e
}

// Refresh forces a refresh of the level regardless of its freshness.
func (e *Engine) Refresh(ctx context.Context, level vocabulary.Level) error {
	if _, err := e.cache.Refresh(ctx, level); err != nil {
		return fmt.Errorf("cache.Refresh > %w", err)
	}
	return nil
}

// NextPrompt picks a uniformly random entry of the level and a uniformly random mode.
func (e *Engine) NextPrompt(ctx context.Context, level vocabulary.Level) (Prompt, error) {
	entries, err := e.cache.Get(ctx, level)
	if err != nil {
		return Prompt{}, fmt.Errorf("cache.Get > %w", err)
	}
	if len(entries) == 0 {
		return Prompt{}, fmt.Errorf("%w for level %s", ErrNoWordsAvailable, level)
	}

	return Prompt{
		Entry:     entries[e.intN(len(entries))],
		Mode:      vocabulary.AllModes[e.intN(len(vocabulary.AllModes))],
		Remaining: len(entries),
	}, nil
}

// Check grades an answer for the entry with the identifier. The answer must equal
// the stored field exactly. A correct answer removes the entry from the level.
func (e *Engine) Check(ctx context.Context, level vocabulary.Level, id string, mode vocabulary.Mode, answer string) (Result, error) {
	mode, err := vocabulary.ParseMode(string(mode))
	if err != nil {
		return Result{}, err
	}
	level, err = vocabulary.ParseLevel(string(level))
	if err != nil {
		return Result{}, err
	}

	entry, ok := e.cache.Find(level, id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidEntry, id)
	}

	expected := entry.Field(mode)
	correct := answer == expected
	if correct {
		e.cache.Remove(level, id)
	}
	e.logger.DebugContext(ctx, "answer checked", "level", level, "id", id, "mode", mode, "correct", correct)
	return Result{
		Correct:   correct,
		Answer:    expected,
		Remaining: e.cache.Len(level),
	}, nil
}

// FormatAnswer shows the asked form first and the other form in full-width parentheses.
func FormatAnswer(entry vocabulary.Entry, mode vocabulary.Mode) string {
	return fmt.Sprintf("%s（%s）", entry.Field(mode), entry.Field(mode.Other()))
}
