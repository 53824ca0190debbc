package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	glossary := NewGlossary(map[string]string{
		"book": "书",
		"eat":  "吃",
		"big":  "大",
		"red":  "红色",
	})

	tests := []struct {
		name    string
		record  RawRecord
		want    Entry
		wantErr error
	}{
		{
			name: "native definition wins",
			record: RawRecord{
				Logographic: "本",
				Phonetic:    "ほん",
				Senses: []RawSense{
					{NativeDefinitions: []string{" ", "书本"}, Glosses: []string{"book"}},
				},
			},
			want: MustNewEntry("本", "ほん", "书本"),
		},
		{
			name: "gloss qualifiers are dropped before the glossary lookup",
			record: RawRecord{
				Logographic: "本",
				Phonetic:    "ほん",
				Senses:      []RawSense{{Glosses: []string{"Book (hardcover)"}}},
			},
			want: MustNewEntry("本", "ほん", "书"),
		},
		{
			name: "later senses are searched",
			record: RawRecord{
				Logographic: "赤",
				Phonetic:    "あか",
				Senses: []RawSense{
					{Glosses: []string{"crimson"}},
					{Glosses: []string{"red; scarlet"}},
				},
			},
			want: MustNewEntry("赤", "あか", "红色"),
		},
		{
			name: "first token fallback for verbs",
			record: RawRecord{
				Logographic: "食べる",
				Phonetic:    "たべる",
				Senses: []RawSense{
					{Glosses: []string{"eat up"}, PartsOfSpeech: []string{"Ichidan verb", "Transitive verb"}},
				},
			},
			want: MustNewEntry("食べる", "たべる", "吃"),
		},
		{
			name: "first token fallback for adjectives named by tags",
			record: RawRecord{
				Logographic: "大きい",
				Phonetic:    "おおきい",
				Senses:      []RawSense{{Glosses: []string{"big in size"}}},
				Tags:        []string{"I-adjective (keiyoushi)"},
			},
			want: MustNewEntry("大きい", "おおきい", "大"),
		},
		{
			name: "no first token fallback for nouns",
			record: RawRecord{
				Logographic: "大物",
				Phonetic:    "おおもの",
				Senses:      []RawSense{{Glosses: []string{"big shot"}, PartsOfSpeech: []string{"Noun"}}},
			},
			wantErr: ErrNoMeaning,
		},
		{
			name: "kana only word uses the reading for both forms",
			record: RawRecord{
				Phonetic: "これ",
				Senses:   []RawSense{{NativeDefinitions: []string{"这个"}}},
			},
			want: MustNewEntry("これ", "これ", "这个"),
		},
		{
			name: "unknown gloss",
			record: RawRecord{
				Logographic: "猿",
				Phonetic:    "さる",
				Senses:      []RawSense{{Glosses: []string{"monkey"}}},
			},
			wantErr: ErrNoMeaning,
		},
		{
			name:    "no senses",
			record:  RawRecord{Logographic: "猿", Phonetic: "さる"},
			wantErr: ErrNoMeaning,
		},
		{
			name: "no reading",
			record: RawRecord{
				Logographic: "本",
				Senses:      []RawSense{{NativeDefinitions: []string{"书"}}},
			},
			wantErr: ErrIncompleteEntry,
		},
	}

	normalizer := NewNormalizer(glossary)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizer.Normalize(tt.record)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.Logographic)
			assert.NotEmpty(t, got.Phonetic)
			assert.NotEmpty(t, got.Meaning)
		})
	}
}

func TestNormalizeGloss(t *testing.T) {
	tests := []struct {
		gloss string
		want  string
	}{
		{gloss: "Book", want: "book"},
		{gloss: "book (hardcover)", want: "book"},
		{gloss: "to eat, to consume", want: "to eat"},
		{gloss: "red; scarlet", want: "red"},
		{gloss: "  water  ", want: "water"},
		{gloss: "(usu. in kana)", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.gloss, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeGloss(tt.gloss))
		})
	}
}
