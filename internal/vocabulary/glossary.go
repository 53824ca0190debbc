package vocabulary

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Glossary maps English glosses to Chinese meanings.
// Lookups are exact after lowercasing; there is no stemming or fuzzy matching.
type Glossary struct {
	terms map[string]string
}

func NewGlossary(terms map[string]string) *Glossary {
	normalized := make(map[string]string, len(terms))
	for english, chinese := range terms {
		normalized[strings.ToLower(strings.TrimSpace(english))] = chinese
	}
	return &Glossary{terms: normalized}
}

// ParseGlossary reads a YAML mapping of `english: chinese` pairs.
func ParseGlossary(contents []byte) (*Glossary, error) {
	var terms map[string]string
	if err := yaml.Unmarshal(contents, &terms); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	return NewGlossary(terms), nil
}

func (g *Glossary) Lookup(english string) (string, bool) {
	chinese, ok := g.terms[strings.ToLower(english)]
	return chinese, ok
}

func (g *Glossary) Len() int {
	return len(g.terms)
}
