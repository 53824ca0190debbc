package dictionary

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/tango/internal/vocabulary"
)

// Source names where stored entries were extracted from.
type Source string

const (
	SourceArchive Source = "archive"
	SourceJisho   Source = "jisho"
)

var _ pflag.Value = (*Source)(nil)

// ParseSource returns the source with the given name.
func ParseSource(name string) (Source, error) {
	switch source := Source(name); source {
	case SourceArchive, SourceJisho:
		return source, nil
	default:
		return "", fmt.Errorf("unknown source %q, expected %s or %s", name, SourceArchive, SourceJisho)
	}
}

func (s Source) String() string {
	return string(s)
}

// Set implements pflag.Value.
func (s *Source) Set(value string) error {
	source, err := ParseSource(value)
	if err != nil {
		return err
	}
	*s = source
	return nil
}

func (s *Source) Type() string {
	return "source"
}

type entryRecord struct {
	vocabulary.Entry
	Source Source `db:"source"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_entry_repository.go -package=mock_dictionary

// EntryRepository stores extracted vocabulary entries.
type EntryRepository interface {
	FindBySource(ctx context.Context, source Source) ([]vocabulary.Entry, error)
	BatchUpsert(ctx context.Context, source Source, entries []vocabulary.Entry) error
}

// DBEntryRepository implements EntryRepository using MySQL.
type DBEntryRepository struct {
	db *sqlx.DB
}

func NewDBEntryRepository(db *sqlx.DB) *DBEntryRepository {
	return &DBEntryRepository{db: db}
}

// FindBySource returns every entry imported from the source, ordered by reading.
func (r *DBEntryRepository) FindBySource(ctx context.Context, source Source) ([]vocabulary.Entry, error) {
	var entries []vocabulary.Entry
	if err := r.db.SelectContext(ctx, &entries,
		"SELECT id, logographic, phonetic, meaning FROM vocabulary_entries WHERE source = ? ORDER BY phonetic, id",
		source,
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(vocabulary_entries) > %w", err)
	}
	return entries, nil
}

// BatchUpsert inserts the entries, or updates the source of the ones already stored.
func (r *DBEntryRepository) BatchUpsert(ctx context.Context, source Source, entries []vocabulary.Entry) error {
	for _, entry := range entries {
		_, err := r.db.NamedExecContext(ctx,
			`INSERT INTO vocabulary_entries (id, logographic, phonetic, meaning, source)
			VALUES (:id, :logographic, :phonetic, :meaning, :source)
			ON DUPLICATE KEY UPDATE source = VALUES(source)`,
			entryRecord{Entry: entry, Source: source})
		if err != nil {
			return fmt.Errorf("db.NamedExecContext(upsert vocabulary_entry %s) > %w", entry.ID, err)
		}
	}
	return nil
}
