// Package vocabulary defines the quiz entry model and the rules that turn raw
// dictionary records into entries.
package vocabulary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrIncompleteEntry = errors.New("entry has an empty field")
	ErrNoMeaning       = errors.New("no meaning could be resolved")
	ErrUnknownLevel    = errors.New("unknown level")
	ErrUnknownMode     = errors.New("unknown mode")
)

// entryNamespace scopes the name-based identifiers of entries.
var entryNamespace = uuid.MustParse("6f1c1f3a-6a0e-4d7b-9a43-2b8f5d1e7c10")

// Entry is a single quiz word. It is a value type and is never mutated once created.
type Entry struct {
	ID          string `json:"id" db:"id"`
	Logographic string `json:"logographic" db:"logographic"`
	Phonetic    string `json:"phonetic" db:"phonetic"`
	Meaning     string `json:"meaning" db:"meaning"`
}

// NewEntry validates the fields and assigns the entry its identifier.
// The identifier depends only on the three fields, so identical words share one.
func NewEntry(logographic, phonetic, meaning string) (Entry, error) {
	if logographic == "" || phonetic == "" || meaning == "" {
		return Entry{}, fmt.Errorf("%w: logographic=%q phonetic=%q meaning=%q",
			ErrIncompleteEntry, logographic, phonetic, meaning)
	}
	name := strings.Join([]string{logographic, phonetic, meaning}, "\x1f")
	return Entry{
		ID:          uuid.NewSHA1(entryNamespace, []byte(name)).String(),
		Logographic: logographic,
		Phonetic:    phonetic,
		Meaning:     meaning,
	}, nil
}

// MustNewEntry is NewEntry for static data. It panics on incomplete input.
func MustNewEntry(logographic, phonetic, meaning string) Entry {
	entry, err := NewEntry(logographic, phonetic, meaning)
	if err != nil {
		panic(err)
	}
	return entry
}

// Field returns the value a quiz in the given mode expects as the answer.
func (e Entry) Field(mode Mode) string {
	if mode == ModeLogographic {
		return e.Logographic
	}
	return e.Phonetic
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%s) - %s", e.Logographic, e.Phonetic, e.Meaning)
}

// Mode selects which form of an entry the learner has to type.
type Mode string

const (
	ModePhonetic    Mode = "kana"
	ModeLogographic Mode = "kanji"
)

var AllModes = []Mode{ModePhonetic, ModeLogographic}

func ParseMode(value string) (Mode, error) {
	for _, mode := range AllModes {
		if value == string(mode) {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
}

// Label is the Chinese name of the script the mode asks for.
func (m Mode) Label() string {
	if m == ModeLogographic {
		return "汉字"
	}
	return "假名"
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeLogographic {
		return ModePhonetic
	}
	return ModeLogographic
}
