package vocabulary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWords(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Entry
		wantErr error
	}{
		{
			name: "list of words",
			input: `# comment
- logographic: 学校
  phonetic: がっこう
  meaning: 学校
- logographic: 食べる
  phonetic: たべる
  meaning: 吃
`,
			want: []Entry{
				MustNewEntry("学校", "がっこう", "学校"),
				MustNewEntry("食べる", "たべる", "吃"),
			},
		},
		{
			name:  "empty file",
			input: "",
			want:  nil,
		},
		{
			name:    "word without meaning",
			input:   "- logographic: 学校\n  phonetic: がっこう\n",
			wantErr: ErrIncompleteEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadWords(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadWords_InvalidYAML(t *testing.T) {
	_, err := ReadWords(strings.NewReader("logographic: [unclosed"))
	assert.ErrorContains(t, err, "yaml.Decode")
}

func TestWriteWords(t *testing.T) {
	entries := []Entry{
		MustNewEntry("電車", "でんしゃ", "电车"),
		MustNewEntry("先生", "せんせい", "老师"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWords(&buf, entries))
	assert.Equal(t, `- logographic: 電車
  phonetic: でんしゃ
  meaning: 电车
- logographic: 先生
  phonetic: せんせい
  meaning: 老师
`, buf.String())

	got, err := ReadWords(&buf)
	require.NoError(t, err)
	assert.Equal(t, entries, got, "written words keep their identifiers")
}
