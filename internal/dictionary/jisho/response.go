// https://jisho.org/api/v1/search/words
package jisho

import (
	"github.com/at-ishikawa/tango/internal/vocabulary"
)

type Response struct {
	Meta Meta   `json:"meta"`
	Data []Item `json:"data"`
}

type Meta struct {
	Status int `json:"status"`
}

type Item struct {
	Slug     string     `json:"slug"`
	IsCommon bool       `json:"is_common"`
	Tags     []string   `json:"tags"`
	JLPT     []string   `json:"jlpt"`
	Japanese []Japanese `json:"japanese"`
	Senses   []Sense    `json:"senses"`
}

type Japanese struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
}

type Sense struct {
	EnglishDefinitions []string `json:"english_definitions"`
	// ChineseDefinitions is not part of the public API but some mirrors add it.
	ChineseDefinitions []string `json:"chinese_definitions"`
	PartsOfSpeech      []string `json:"parts_of_speech"`
}

// HasReading reports whether the item carries at least one Japanese form.
func (item Item) HasReading() bool {
	return len(item.Japanese) > 0
}

// ToRawRecord converts the first Japanese form and every sense of the item.
func (item Item) ToRawRecord() vocabulary.RawRecord {
	record := vocabulary.RawRecord{
		Tags: item.Tags,
	}
	if item.HasReading() {
		record.Logographic = item.Japanese[0].Word
		record.Phonetic = item.Japanese[0].Reading
	}
	record.Senses = make([]vocabulary.RawSense, 0, len(item.Senses))
	for _, sense := range item.Senses {
		record.Senses = append(record.Senses, vocabulary.RawSense{
			NativeDefinitions: sense.ChineseDefinitions,
			Glosses:           sense.EnglishDefinitions,
			PartsOfSpeech:     sense.PartsOfSpeech,
		})
	}
	return record
}
