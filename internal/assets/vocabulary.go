// Package assets holds the word data bundled into the binaries.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/at-ishikawa/tango/internal/vocabulary"
)

//go:embed vocabulary/glossary.yml
var glossaryYAML []byte

//go:embed vocabulary/fallback.yml
var fallbackYAML []byte

// Glossary returns the bundled English to Chinese glossary.
func Glossary() (*vocabulary.Glossary, error) {
	glossary, err := vocabulary.ParseGlossary(glossaryYAML)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.ParseGlossary > %w", err)
	}
	return glossary, nil
}

// FallbackEntries returns the core words used when no dictionary source delivers enough.
func FallbackEntries() ([]vocabulary.Entry, error) {
	entries, err := vocabulary.ReadWords(bytes.NewReader(fallbackYAML))
	if err != nil {
		return nil, fmt.Errorf("vocabulary.ReadWords(fallback) > %w", err)
	}
	return entries, nil
}
