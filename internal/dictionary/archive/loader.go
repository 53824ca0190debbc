package archive

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/at-ishikawa/tango/internal/vocabulary"
)

// Stats counts what happened to the records of one archive.
type Stats struct {
	Records    int `json:"records"`
	Links      int `json:"links"`
	Malformed  int `json:"malformed"`
	Rejected   int `json:"rejected"`
	Duplicates int `json:"duplicates"`
	Emitted    int `json:"emitted"`
}

// Load extracts every entry of the archive file at path.
func Load(path string) ([]vocabulary.Entry, Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	entries, stats, err := ReadEntries(file)
	if err != nil {
		return nil, stats, fmt.Errorf("ReadEntries(%s) > %w", path, err)
	}
	slog.Debug("archive loaded", "path", path, "stats", stats)
	return entries, stats, nil
}

// ReadEntries extracts entries in archive order. Records that repeat an entry
// already extracted are counted but not emitted twice.
func ReadEntries(r io.Reader) ([]vocabulary.Entry, Stats, error) {
	var stats Stats
	var entries []vocabulary.Entry
	seen := make(map[string]struct{})

	scanner := NewScanner(r)
	for scanner.Scan() {
		record := scanner.Record()
		stats.Records++
		if record.IsLink() {
			stats.Links++
			continue
		}

		entry, err := Extract(record)
		switch {
		case errors.Is(err, ErrMalformedRecord):
			stats.Malformed++
			slog.Debug("skip malformed archive record", "record", stats.Records, "error", err)
			continue
		case err != nil:
			stats.Rejected++
			continue
		}

		if _, ok := seen[entry.ID]; ok {
			stats.Duplicates++
			continue
		}
		seen[entry.ID] = struct{}{}
		entries = append(entries, entry)
		stats.Emitted++
	}
	if err := scanner.Err(); err != nil {
		return entries, stats, fmt.Errorf("scanner.Scan > %w", err)
	}
	return entries, stats, nil
}
