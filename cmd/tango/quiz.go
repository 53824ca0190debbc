package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/tango/internal/api/quizv1/quizv1connect"
	"github.com/at-ishikawa/tango/internal/cli"
	"github.com/at-ishikawa/tango/internal/dictionary"
	"github.com/at-ishikawa/tango/internal/dictionary/archive"
	"github.com/at-ishikawa/tango/internal/vocabulary"
)

const defaultServerURL = "http://localhost:8080"

func newQuizCommand() *cobra.Command {
	quizCommand := &cobra.Command{
		Use:   "quiz",
		Short: "Interactive vocabulary quizzes",
	}

	quizCommand.AddCommand(newQuizArchiveCommand())
	quizCommand.AddCommand(newQuizRemoteCommand())

	return quizCommand
}

func newQuizArchiveCommand() *cobra.Command {
	var fromDatabase bool
	command := &cobra.Command{
		Use:   "archive [path]",
		Short: "Quiz on the words of a dictionary archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var entries []vocabulary.Entry
			if fromDatabase {
				repository, closeRepository, err := openEntryRepository(cmd.Context(), cfg.Database)
				if err != nil {
					return err
				}
				defer func() {
					_ = closeRepository()
				}()
				entries, err = repository.FindBySource(cmd.Context(), dictionary.SourceArchive)
				if err != nil {
					return fmt.Errorf("FindBySource > %w", err)
				}
			} else {
				path, err := archivePath(args, cfg)
				if err != nil {
					return err
				}
				var stats archive.Stats
				entries, stats, err = archive.Load(path)
				if err != nil {
					return fmt.Errorf("archive.Load > %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "已加载 %d 个单词\n", stats.Emitted)
			}

			quizCLI, err := cli.NewArchiveQuizCLI(entries, nil, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("cli.NewArchiveQuizCLI > %w", err)
			}
			quizCLI.PrintWelcome()
			if err := quizCLI.Run(cmd.Context(), quizCLI); err != nil {
				return err
			}
			quizCLI.PrintSummary()
			return nil
		},
	}
	command.Flags().BoolVar(&fromDatabase, "db", false, "read the words imported into the database instead of a file")
	return command
}

func newQuizRemoteCommand() *cobra.Command {
	level := vocabulary.LevelN5
	var serverURL string
	command := &cobra.Command{
		Use:   "remote",
		Short: "Quiz through a running quiz server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := quizv1connect.NewQuizServiceClient(http.DefaultClient, serverURL)
			quizCLI := cli.NewRemoteQuizCLI(client, level, cmd.InOrStdin(), cmd.OutOrStdout())
			quizCLI.PrintWelcome()
			return quizCLI.Run(cmd.Context(), quizCLI)
		},
	}
	command.Flags().StringVar(&serverURL, "server", defaultServerURL, "quiz server URL")
	command.Flags().Var(&level, "level", "JLPT level, one of N5, N4, N3, N2 or N1")
	return command
}
