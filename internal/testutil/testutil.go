// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOption configures optional fields of the generated config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	jishoBaseURL string
	archivePath  string
}

// WithJishoBaseURL points the dictionary client at a test server.
func WithJishoBaseURL(baseURL string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.jishoBaseURL = baseURL
	}
}

// WithArchivePath sets the archive the local quiz reads by default.
func WithArchivePath(path string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.archivePath = path
	}
}

// SetupTestConfig creates a minimal config file and the dictionary cache directory for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		jishoBaseURL: "https://jisho.org",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cacheDir := filepath.Join(tmpDir, "dictionaries", "jisho")
	require.NoError(t, os.MkdirAll(cacheDir, 0755))

	configContent := fmt.Sprintf(`server:
  port: 8080
  log_level: debug
dictionaries:
  jisho:
    base_url: %s
    timeout_seconds: 2
    cache_directory: %s
  archive:
    path: %q
cache:
  capacity: 20
  min_entries: 5
  refresh_interval_seconds: 300
`,
		cfg.jishoBaseURL,
		cacheDir,
		cfg.archivePath,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// ArchiveWord is one headword of an archive fixture.
type ArchiveWord struct {
	Key         string
	Logographic string
	Meanings    []string
}

// CreateArchive writes the words as an MDict text export and returns its path.
func CreateArchive(t *testing.T, dir string, words ...ArchiveWord) string {
	t.Helper()

	var b strings.Builder
	for _, word := range words {
		b.WriteString(word.Key)
		b.WriteString("\n")
		fmt.Fprintf(&b, `<span class="word">%s</span>`, word.Logographic)
		for _, meaning := range word.Meanings {
			fmt.Fprintf(&b, `<ul class="ncdata-sense-wrap"><li><span>%s</span></li></ul>`, meaning)
		}
		b.WriteString("\n</>\n")
	}

	path := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}
