package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/tango/internal/vocabulary"
)

const testArchive = "たべる\n<span class=\"word\">食べる</span><ul class=\"ncdata-sense-wrap\"><span>吃</span></ul>\n</>\n" +
	"たべる\n<span class=\"word\">食べる</span><ul class=\"ncdata-sense-wrap\"><span>吃</span></ul>\n</>\n" +
	"たべもの\n@@@LINK=食べ物\n</>\n" +
	"\xffねこ\n<span class=\"word\">猫</span>\n</>\n" +
	"みる\n<span class=\"word\">→</span>\n</>\n" +
	"がっこう\n<span class=\"word\">学校</span><ul class=\"ncdata-sense-wrap\"><span>学校</span></ul>\n</>\n"

func TestReadEntries(t *testing.T) {
	entries, stats, err := ReadEntries(strings.NewReader(testArchive))
	require.NoError(t, err)
	assert.Equal(t, []vocabulary.Entry{
		vocabulary.MustNewEntry("食べる", "たべる", "吃"),
		vocabulary.MustNewEntry("学校", "がっこう", "学校"),
	}, entries)
	assert.Equal(t, Stats{
		Records:    6,
		Links:      1,
		Malformed:  1,
		Rejected:   1,
		Duplicates: 1,
		Emitted:    2,
	}, stats)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte(testArchive), 0644))

	entries, stats, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 2, stats.Emitted)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
