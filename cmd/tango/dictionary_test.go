package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/tango/internal/testutil"
)

var jishoWords = []struct {
	word, reading, meaning string
}{
	{"学校", "がっこう", "学校"},
	{"先生", "せんせい", "老师"},
	{"食べる", "たべる", "吃"},
	{"電車", "でんしゃ", "电车"},
	{"勉強", "べんきょう", "学习"},
}

func jishoBody() string {
	items := make([]string, 0, len(jishoWords))
	for _, w := range jishoWords {
		items = append(items, fmt.Sprintf(
			`{"slug":%q,"jlpt":["jlpt-n4"],"japanese":[{"word":%q,"reading":%q}],"senses":[{"english_definitions":["x"],"chinese_definitions":[%q],"parts_of_speech":["Noun"]}]}`,
			w.word, w.word, w.reading, w.meaning))
	}
	return `{"meta":{"status":200},"data":[` + strings.Join(items, ",") + `]}`
}

func newJishoServer(t *testing.T, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/api/v1/search/words" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(jishoBody()))
		}
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func TestNewDictionaryCommand(t *testing.T) {
	cmd := newDictionaryCommand()

	assert.Equal(t, "dictionary", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
	assert.NotNil(t, newDictionaryFetchCommand().Flags().Lookup("level"))
	assert.NotNil(t, newDictionaryLookupCommand().Flags().Lookup("page"))
}

func TestDictionaryFetchCommand(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		args       []string
		wantOutput []string
		wantErr    string
	}{
		{
			name:   "prints the words of the level",
			status: http.StatusOK,
			args:   []string{"--level", "n4"},
			wantOutput: []string{
				"# N4",
				"初级词汇",
				"| 学校 | がっこう | 学校 |",
				"| 勉強 | べんきょう | 学习 |",
				"5 words",
			},
		},
		{
			name:       "prints the fallback words when the dictionary fails",
			status:     http.StatusInternalServerError,
			args:       []string{},
			wantOutput: []string{"# N5", "8 words"},
		},
		{
			name:    "rejects an unknown level",
			status:  http.StatusOK,
			args:    []string{"--level", "N6"},
			wantErr: "unknown level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newJishoServer(t, tt.status)
			setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir(), testutil.WithJishoBaseURL(server.URL)))

			output, err := executeCommand(t, newDictionaryFetchCommand(), "", tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOutput {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestDictionaryFetchCommand_OutputFile(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		pdf        bool
		wantFiles  []string
		wantOutput string
		wantErr    string
	}{
		{
			name:       "writes the markdown word list",
			fileName:   "n4.md",
			wantFiles:  []string{"n4.md"},
			wantOutput: "wrote 5 words to",
		},
		{
			name:       "renders the word list as pdf",
			fileName:   "n4.md",
			pdf:        true,
			wantFiles:  []string{"n4.md", "n4.pdf"},
			wantOutput: "n4.pdf",
		},
		{
			name:     "rejects pdf output without a markdown file",
			fileName: "n4.txt",
			pdf:      true,
			wantErr:  "word list must have .md extension",
		},
		{
			name:    "rejects pdf without an output file",
			pdf:     true,
			wantErr: "--pdf requires --output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newJishoServer(t, http.StatusOK)
			tmpDir := t.TempDir()
			setConfigFile(t, testutil.SetupTestConfig(t, tmpDir, testutil.WithJishoBaseURL(server.URL)))

			args := []string{"--level", "N4"}
			if tt.fileName != "" {
				args = append(args, "--output", filepath.Join(tmpDir, tt.fileName))
			}
			if tt.pdf {
				args = append(args, "--pdf")
			}

			output, err := executeCommand(t, newDictionaryFetchCommand(), "", args...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, output, tt.wantOutput)
			for _, name := range tt.wantFiles {
				assert.FileExists(t, filepath.Join(tmpDir, name))
			}

			content, err := os.ReadFile(filepath.Join(tmpDir, tt.fileName))
			require.NoError(t, err)
			assert.Contains(t, string(content), "| 食べる | たべる | 吃 |")
		})
	}
}

func TestDictionaryFetchCommand_InvalidConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	_, err := executeCommand(t, newDictionaryFetchCommand(), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestDictionaryLookupCommand(t *testing.T) {
	server, requests := newJishoServer(t, http.StatusOK)
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir, testutil.WithJishoBaseURL(server.URL)))

	output, err := executeCommand(t, newDictionaryLookupCommand(), "", "学校", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "1: 学校(がっこう)\tjlpt-n4\tx\n")
	assert.Contains(t, output, "5: 勉強(べんきょう)")

	cached, err := os.ReadDir(filepath.Join(tmpDir, "dictionaries", "jisho"))
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	_, err = executeCommand(t, newDictionaryLookupCommand(), "", "学校", "--page", "2")
	require.NoError(t, err)
	assert.Equal(t, int32(1), requests.Load(), "the second lookup is served from the cache")

	_, err = executeCommand(t, newDictionaryLookupCommand(), "", "学校", "--page", "0")
	assert.ErrorContains(t, err, "page must be 1 or greater")
}
