package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/tango/internal/datasync"
	"github.com/at-ishikawa/tango/internal/dictionary"
)

func newWordsCommand(open repositoryOpener) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "words",
		Short: "Copy stored quiz words from and to YAML word files",
	}
	rootCommand.AddCommand(
		newWordsImportCommand(open),
		newWordsExportCommand(open),
	)
	return rootCommand
}

func newWordsImportCommand(open repositoryOpener) *cobra.Command {
	source := dictionary.SourceJisho
	var dryRun bool
	command := &cobra.Command{
		Use:   "import <file>",
		Short: "Store the words of a YAML word file in the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", args[0], err)
			}
			defer func() {
				_ = file.Close()
			}()

			ctx := cmd.Context()
			repository, closeRepository, err := open(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepository()
			}()

			output := cmd.OutOrStdout()
			result, err := datasync.NewImporter(repository, output).
				ImportFile(ctx, source, file, datasync.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("importer.ImportFile > %w", err)
			}

			fmt.Fprintln(output, "\nImport Summary:")
			if dryRun {
				fmt.Fprintln(output, "  (dry-run mode, no changes made)")
			}
			fmt.Fprintf(output, "  %s words: %d new, %d skipped\n", source, result.New, result.Skipped)
			return nil
		},
	}
	command.Flags().Var(&source, "source", "source to store the words under, archive or jisho")
	command.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return command
}

func newWordsExportCommand(open repositoryOpener) *cobra.Command {
	source := dictionary.SourceArchive
	var outputPath string
	command := &cobra.Command{
		Use:   "export",
		Short: "Write the stored words of a source as a YAML word file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			repository, closeRepository, err := open(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepository()
			}()

			output := cmd.OutOrStdout()
			if outputPath != "" {
				var file *os.File
				file, err = os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("os.Create(%s) > %w", outputPath, err)
				}
				defer func() {
					if closeErr := file.Close(); closeErr != nil && err == nil {
						err = fmt.Errorf("file.Close > %w", closeErr)
					}
				}()
				output = file
			}

			count, err := datasync.NewExporter(repository).Export(ctx, source, output)
			if err != nil {
				return fmt.Errorf("exporter.Export > %w", err)
			}
			if outputPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d %s words to %s\n", count, source, outputPath)
			}
			return nil
		},
	}
	command.Flags().Var(&source, "source", "source of the words to export, archive or jisho")
	command.Flags().StringVarP(&outputPath, "output", "o", "", "write to this file instead of stdout")
	return command
}
