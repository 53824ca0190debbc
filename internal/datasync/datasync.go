// Package datasync copies vocabulary entries between YAML word files and the database.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/tango/internal/dictionary"
	"github.com/at-ishikawa/tango/internal/vocabulary"
)

// ImportResult counts what an import did, or would do in a dry run.
type ImportResult struct {
	New     int
	Skipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer stores entries read from word files.
type Importer struct {
	repository dictionary.EntryRepository
	writer     io.Writer
}

// NewImporter reports every entry it handles to writer.
func NewImporter(repository dictionary.EntryRepository, writer io.Writer) *Importer {
	return &Importer{
		repository: repository,
		writer:     writer,
	}
}

// Import stores the entries under source. Entries already stored there, and
// repeats within entries, are skipped.
func (imp *Importer) Import(ctx context.Context, source dictionary.Source, entries []vocabulary.Entry, opts ImportOptions) (*ImportResult, error) {
	stored, err := imp.repository.FindBySource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("repository.FindBySource(%s) > %w", source, err)
	}
	known := make(map[string]struct{}, len(stored)+len(entries))
	for _, entry := range stored {
		known[entry.ID] = struct{}{}
	}

	var result ImportResult
	pending := make([]vocabulary.Entry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := known[entry.ID]; ok {
			result.Skipped++
			fmt.Fprintf(imp.writer, "  [SKIP]  %s\n", entry)
			continue
		}
		known[entry.ID] = struct{}{}
		pending = append(pending, entry)
		result.New++
		fmt.Fprintf(imp.writer, "  [NEW]  %s\n", entry)
	}

	if opts.DryRun || len(pending) == 0 {
		return &result, nil
	}
	if err := imp.repository.BatchUpsert(ctx, source, pending); err != nil {
		return nil, fmt.Errorf("repository.BatchUpsert(%s) > %w", source, err)
	}
	return &result, nil
}

// ImportFile reads a YAML word file and imports its entries.
func (imp *Importer) ImportFile(ctx context.Context, source dictionary.Source, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	entries, err := vocabulary.ReadWords(r)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.ReadWords > %w", err)
	}
	return imp.Import(ctx, source, entries, opts)
}

// Exporter writes stored entries as YAML word files.
type Exporter struct {
	repository dictionary.EntryRepository
}

func NewExporter(repository dictionary.EntryRepository) *Exporter {
	return &Exporter{repository: repository}
}

// Export writes every entry of source to w and returns how many were written.
func (e *Exporter) Export(ctx context.Context, source dictionary.Source, w io.Writer) (int, error) {
	entries, err := e.repository.FindBySource(ctx, source)
	if err != nil {
		return 0, fmt.Errorf("repository.FindBySource(%s) > %w", source, err)
	}
	if err := vocabulary.WriteWords(w, entries); err != nil {
		return 0, fmt.Errorf("vocabulary.WriteWords > %w", err)
	}
	return len(entries), nil
}
