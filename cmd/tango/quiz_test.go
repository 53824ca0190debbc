package main

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/at-ishikawa/tango/internal/quiz"
	"github.com/at-ishikawa/tango/internal/server"
	"github.com/at-ishikawa/tango/internal/speech"
	"github.com/at-ishikawa/tango/internal/testutil"
	"github.com/at-ishikawa/tango/internal/vocabulary"
	"github.com/at-ishikawa/tango/internal/wordcache"
)

func TestNewQuizCommand(t *testing.T) {
	cmd := newQuizCommand()

	assert.Equal(t, "quiz", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
	assert.NotNil(t, newQuizArchiveCommand().Flags().Lookup("db"))
	remote := newQuizRemoteCommand()
	assert.Equal(t, defaultServerURL, remote.Flags().Lookup("server").DefValue)
	assert.Equal(t, "N5", remote.Flags().Lookup("level").DefValue)
}

func TestQuizArchiveCommand(t *testing.T) {
	tmpDir := t.TempDir()
	path := testutil.CreateArchive(t, tmpDir,
		testutil.ArchiveWord{Key: "がっこう", Logographic: "学校", Meanings: []string{"学校"}},
	)
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir, testutil.WithArchivePath(path)))

	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantOutput []string
	}{
		{
			name:  "reads the configured archive and quits",
			stdin: "q\n",
			wantOutput: []string{
				"已加载 1 个单词",
				"欢迎使用日语单词测试程序",
				"【中文】学校",
				"测试结束！共完成 0 题，答对 0 题",
			},
		},
		{
			name:  "skips until the input ends",
			stdin: "s\ns\n",
			args:  []string{path},
			wantOutput: []string{
				"跳过！正确答案是：",
				"测试结束！共完成 2 题，答对 0 题",
				"正确率：0.0%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(t, newQuizArchiveCommand(), tt.stdin, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.wantOutput {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestQuizArchiveCommand_EmptyArchive(t *testing.T) {
	tmpDir := t.TempDir()
	path := testutil.CreateArchive(t, tmpDir)
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	_, err := executeCommand(t, newQuizArchiveCommand(), "", path)
	assert.ErrorIs(t, err, quiz.ErrNoWordsAvailable)
}

type staticSource []vocabulary.Entry

func (s staticSource) FetchEntries(_ context.Context, _ vocabulary.Level) []vocabulary.Entry {
	return s
}

func TestQuizRemoteCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	book := vocabulary.MustNewEntry("本", "ほん", "书")
	cache := wordcache.New(staticSource{book}, wordcache.DefaultConfig)
	engine := quiz.NewEngine(cache, quiz.WithIntN(func(int) int { return 0 }))
	quizHandler, err := server.NewQuizHandler(engine, nil)
	require.NoError(t, err)
	speechHandler := server.NewSpeechHandler(speech.NewGoogleTTS(speech.Config{}), rate.NewLimiter(0, 0), nil)
	quizServer := httptest.NewServer(server.NewHTTPHandler(quizHandler, speechHandler, nil))
	defer quizServer.Close()

	output, err := executeCommand(t, newQuizRemoteCommand(), "ぼん\nほん\nq\n", "--server", quizServer.URL, "--level", "N4")
	require.NoError(t, err)
	assert.Contains(t, output, "【中文】书")
	assert.Contains(t, output, "✗ 回答错误！正确答案是：ほん（本）")
	assert.Contains(t, output, "✓ 回答正确！")
}
