package vocabulary

import (
	"fmt"
	"regexp"
	"strings"
)

// RawRecord is a dictionary record before normalization. Every field is optional.
type RawRecord struct {
	Logographic string
	Phonetic    string
	Senses      []RawSense
	Tags        []string
}

// RawSense is one sense of a raw record.
type RawSense struct {
	// NativeDefinitions are definitions already written in the learner's language.
	NativeDefinitions []string
	// Glosses are English definitions, possibly followed by qualifiers.
	Glosses       []string
	PartsOfSpeech []string
}

var inflectablePattern = regexp.MustCompile(`\b(adjective|verb)\b`)

// Normalizer converts raw records into entries, translating English glosses
// through a glossary when the record has no Chinese definition.
type Normalizer struct {
	glossary *Glossary
}

func NewNormalizer(glossary *Glossary) *Normalizer {
	return &Normalizer{glossary: glossary}
}

// Normalize returns the entry for the record, or an error when the record is unusable.
func (n *Normalizer) Normalize(record RawRecord) (Entry, error) {
	meaning := n.resolveMeaning(record)
	if meaning == "" {
		return Entry{}, ErrNoMeaning
	}

	logographic := strings.TrimSpace(record.Logographic)
	phonetic := strings.TrimSpace(record.Phonetic)
	if logographic == "" {
		logographic = phonetic
	}
	entry, err := NewEntry(logographic, phonetic, meaning)
	if err != nil {
		return Entry{}, fmt.Errorf("NewEntry > %w", err)
	}
	return entry, nil
}

func (n *Normalizer) resolveMeaning(record RawRecord) string {
	for _, sense := range record.Senses {
		for _, definition := range sense.NativeDefinitions {
			if definition = strings.TrimSpace(definition); definition != "" {
				return definition
			}
		}
	}

	for _, sense := range record.Senses {
		for _, gloss := range sense.Glosses {
			if meaning, ok := n.glossary.Lookup(NormalizeGloss(gloss)); ok {
				return meaning
			}
		}
	}

	if len(record.Senses) == 0 || !isInflectable(record) {
		return ""
	}
	for _, gloss := range record.Senses[0].Glosses {
		fields := strings.Fields(strings.ToLower(gloss))
		if len(fields) == 0 {
			continue
		}
		if meaning, ok := n.glossary.Lookup(fields[0]); ok {
			return meaning
		}
	}
	return ""
}

// NormalizeGloss lowercases a gloss and drops the qualifiers that follow
// an opening parenthesis, a comma or a semicolon.
func NormalizeGloss(gloss string) string {
	gloss = strings.ToLower(gloss)
	for _, separator := range []string{"(", ",", ";"} {
		gloss, _, _ = strings.Cut(gloss, separator)
		gloss = strings.TrimSpace(gloss)
	}
	return gloss
}

func isInflectable(record RawRecord) bool {
	tags := record.Tags
	if len(record.Senses) > 0 {
		tags = append(tags[:len(tags):len(tags)], record.Senses[0].PartsOfSpeech...)
	}
	for _, tag := range tags {
		if inflectablePattern.MatchString(strings.ToLower(tag)) {
			return true
		}
	}
	return false
}
