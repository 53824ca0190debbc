package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/tango/internal/config"
	"github.com/at-ishikawa/tango/internal/dictionary"
	"github.com/at-ishikawa/tango/internal/dictionary/archive"
)

var errNoArchivePath = errors.New("archive path is required: pass it as an argument or set dictionaries.archive.path")

func newArchiveCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "archive",
		Short: "Work with an offline dictionary archive",
	}
	rootCommand.AddCommand(
		newArchiveStatsCommand(),
		newArchiveImportCommand(),
	)
	return rootCommand
}

// archivePath prefers the argument over the configured archive.
func archivePath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Dictionaries.Archive.Path != "" {
		return cfg.Dictionaries.Archive.Path, nil
	}
	return "", errNoArchivePath
}

func newArchiveStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [path]",
		Short: "Show how many quiz words an archive yields",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path, err := archivePath(args, cfg)
			if err != nil {
				return err
			}

			_, stats, err := archive.Load(path)
			if err != nil {
				return fmt.Errorf("archive.Load > %w", err)
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(stats)
		},
	}
}

func newArchiveImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [path]",
		Short: "Store the quiz words of an archive in the database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path, err := archivePath(args, cfg)
			if err != nil {
				return err
			}

			entries, stats, err := archive.Load(path)
			if err != nil {
				return fmt.Errorf("archive.Load > %w", err)
			}

			ctx := cmd.Context()
			repository, closeRepository, err := openEntryRepository(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepository()
			}()
			if err := repository.BatchUpsert(ctx, dictionary.SourceArchive, entries); err != nil {
				return fmt.Errorf("BatchUpsert > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries (%d records, %d duplicates)\n",
				stats.Emitted, stats.Records, stats.Duplicates)
			return err
		},
	}
}
