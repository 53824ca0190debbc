package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/tango/internal/assets"
	"github.com/at-ishikawa/tango/internal/dictionary"
	"github.com/at-ishikawa/tango/internal/dictionary/jisho"
	"github.com/at-ishikawa/tango/internal/pdf"
	"github.com/at-ishikawa/tango/internal/vocabulary"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "dictionary",
		Short: "Query the online dictionary",
	}
	rootCommand.AddCommand(
		newDictionaryFetchCommand(),
		newDictionaryLookupCommand(),
	)
	return rootCommand
}

func newDictionaryFetchCommand() *cobra.Command {
	level := vocabulary.LevelN5
	var outputPath string
	var generatePDF bool
	command := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch one batch of quiz words for a level and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generatePDF && outputPath == "" {
				return fmt.Errorf("--pdf requires --output")
			}
			if generatePDF {
				if _, err := pdf.PathFor(outputPath); err != nil {
					return err
				}
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			glossary, err := assets.Glossary()
			if err != nil {
				return fmt.Errorf("assets.Glossary > %w", err)
			}
			fallback, err := assets.FallbackEntries()
			if err != nil {
				return fmt.Errorf("assets.FallbackEntries > %w", err)
			}

			client := jisho.NewClient(cfg.Dictionaries.Jisho.BaseURL, cfg.Dictionaries.Jisho.Timeout())
			fetcher := dictionary.NewFetcher(
				client,
				vocabulary.NewNormalizer(glossary),
				fallback,
				dictionary.WithLogger(slog.Default()),
			)
			entries := fetcher.FetchEntries(cmd.Context(), level)
			data := assets.WordListTemplate{
				Title:       level.String(),
				Description: level.Label(),
				Entries:     entries,
			}

			if outputPath == "" {
				return assets.WriteWordList(cmd.OutOrStdout(), cfg.Templates.WordListTemplate, data)
			}
			if err := writeWordListFile(outputPath, cfg.Templates.WordListTemplate, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d words to %s\n", len(entries), outputPath)
			if !generatePDF {
				return nil
			}

			pdfPath, err := pdf.ConvertFile(outputPath)
			if err != nil {
				return fmt.Errorf("pdf.ConvertFile > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pdfPath)
			return nil
		},
	}
	command.Flags().Var(&level, "level", "JLPT level, one of N5, N4, N3, N2 or N1")
	command.Flags().StringVarP(&outputPath, "output", "o", "", "write the markdown word list to this file instead of stdout")
	command.Flags().BoolVar(&generatePDF, "pdf", false, "also render the word list file as PDF")
	return command
}

func newDictionaryLookupCommand() *cobra.Command {
	var page int
	command := &cobra.Command{
		Use:   "lookup <keyword>",
		Short: "Look up a keyword, caching the raw response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return fmt.Errorf("page must be 1 or greater: %d", page)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := jisho.NewClient(cfg.Dictionaries.Jisho.BaseURL, cfg.Dictionaries.Jisho.Timeout())
			reader := dictionary.NewReader(cfg.Dictionaries.Jisho.CacheDirectory, client)
			response, err := reader.Lookup(cmd.Context(), args[0], page)
			if err != nil {
				return fmt.Errorf("dictionary.NewReader.Lookup > %w", err)
			}
			reader.Show(cmd.OutOrStdout(), response)
			return nil
		},
	}
	command.Flags().IntVar(&page, "page", 1, "result page")
	return command
}

func writeWordListFile(path string, templatePath string, data assets.WordListTemplate) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("file.Close > %w", closeErr)
		}
	}()

	return assets.WriteWordList(file, templatePath, data)
}
