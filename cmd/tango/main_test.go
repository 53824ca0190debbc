package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	tests := []struct {
		name       string
		debugMode  bool
		wantDebug  bool
		wantOutput []string
	}{
		{
			name:       "debug mode writes debug records",
			debugMode:  true,
			wantDebug:  true,
			wantOutput: []string{"level=DEBUG", "msg=probe", "source="},
		},
		{
			name:      "info level drops debug records",
			debugMode: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			setupLogger(&buf, tt.debugMode)

			assert.Equal(t, tt.wantDebug, slog.Default().Enabled(context.Background(), slog.LevelDebug))
			slog.Debug("probe")
			if len(tt.wantOutput) == 0 {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tt.wantOutput {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "tango", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"dictionary", "archive", "quiz", "words"}, names)
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	_, err := executeCommand(t, newRootCommand(), "", "flashcards")
	assert.ErrorContains(t, err, `unknown command "flashcards"`)
}
