package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/tango/internal/config"
	"github.com/at-ishikawa/tango/internal/database"
	"github.com/at-ishikawa/tango/internal/dictionary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// repositoryOpener returns an entry repository and the function releasing it.
type repositoryOpener func(ctx context.Context, cfg config.DatabaseConfig) (dictionary.EntryRepository, func() error, error)

// openEntryRepository connects to MySQL and applies the schema migrations.
func openEntryRepository(ctx context.Context, cfg config.DatabaseConfig) (dictionary.EntryRepository, func() error, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open > %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("database.Migrate > %w", err)
	}
	return dictionary.NewDBEntryRepository(db), db.Close, nil
}
