package vocabulary

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type wordRecord struct {
	Logographic string `yaml:"logographic"`
	Phonetic    string `yaml:"phonetic"`
	Meaning     string `yaml:"meaning"`
}

// ReadWords decodes a YAML list of words. Identifiers are derived, never read.
func ReadWords(r io.Reader) ([]Entry, error) {
	var records []wordRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml.Decode > %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for i, record := range records {
		entry, err := NewEntry(record.Logographic, record.Phonetic, record.Meaning)
		if err != nil {
			return nil, fmt.Errorf("word %d > %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteWords encodes entries in the format ReadWords reads.
func WriteWords(w io.Writer, entries []Entry) error {
	records := make([]wordRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, wordRecord{
			Logographic: entry.Logographic,
			Phonetic:    entry.Phonetic,
			Meaning:     entry.Meaning,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("yaml.Encode > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("yaml.Encoder.Close > %w", err)
	}
	return nil
}
