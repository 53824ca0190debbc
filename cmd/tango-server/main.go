package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/at-ishikawa/tango/internal/assets"
	"github.com/at-ishikawa/tango/internal/bootstrap"
	"github.com/at-ishikawa/tango/internal/config"
	"github.com/at-ishikawa/tango/internal/dictionary"
	"github.com/at-ishikawa/tango/internal/dictionary/jisho"
	"github.com/at-ishikawa/tango/internal/quiz"
	"github.com/at-ishikawa/tango/internal/server"
	"github.com/at-ishikawa/tango/internal/speech"
	"github.com/at-ishikawa/tango/internal/vocabulary"
	"github.com/at-ishikawa/tango/internal/wordcache"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	logger, err := newLogger(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("newLogger() > %w", err)
	}
	slog.SetDefault(logger)

	httpServer, synthesizer, err := newServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("newServer() > %w", err)
	}

	app := bootstrap.New(bootstrap.WithLogger(logger))
	app.AddShutdownHook("speech client", func(ctx context.Context) error {
		return synthesizer.Close()
	})
	return app.Serve(context.Background(), httpServer)
}

func loadConfig() (*config.Config, error) {
	configFile := os.Getenv("TANGO_CONFIG")
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func newLogger(level string) (*slog.Logger, error) {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})), nil
}

// newServer wires the dictionary, the level cache and the handlers into an HTTP server.
func newServer(cfg *config.Config, logger *slog.Logger) (*http.Server, *speech.GoogleTTS, error) {
	glossary, err := assets.Glossary()
	if err != nil {
		return nil, nil, fmt.Errorf("assets.Glossary() > %w", err)
	}
	fallback, err := assets.FallbackEntries()
	if err != nil {
		return nil, nil, fmt.Errorf("assets.FallbackEntries() > %w", err)
	}

	fetcher := dictionary.NewFetcher(
		jisho.NewClient(cfg.Dictionaries.Jisho.BaseURL, cfg.Dictionaries.Jisho.Timeout()),
		vocabulary.NewNormalizer(glossary),
		fallback,
		dictionary.WithLogger(logger),
	)
	cache := wordcache.New(fetcher, wordcache.Config{
		Capacity:        cfg.Cache.Capacity,
		MinEntries:      cfg.Cache.MinEntries,
		RefreshInterval: cfg.Cache.RefreshInterval(),
	}, wordcache.WithLogger(logger))
	engine := quiz.NewEngine(cache, quiz.WithLogger(logger))

	quizHandler, err := server.NewQuizHandler(engine, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("server.NewQuizHandler() > %w", err)
	}

	synthesizer := speech.NewGoogleTTS(speech.Config{
		BaseURL:       cfg.Speech.BaseURL,
		Language:      cfg.Speech.Language,
		Timeout:       cfg.Speech.Timeout(),
		MaxTextLength: cfg.Speech.MaxTextLength,
	})
	limiter := rate.NewLimiter(rate.Limit(cfg.Speech.RequestsPerSecond), cfg.Speech.Burst)
	speechHandler := server.NewSpeechHandler(synthesizer, limiter, logger)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.NewHTTPHandler(quizHandler, speechHandler, cfg.Server.CORS.AllowedOrigins),
		ReadHeaderTimeout: readHeaderTimeout,
	}, synthesizer, nil
}
