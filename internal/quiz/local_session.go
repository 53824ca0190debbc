package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/at-ishikawa/tango/internal/vocabulary"
)

var ErrNoCurrentPrompt = errors.New("no current prompt")

// Score is the running tally of a local session. Skipped prompts count toward Total.
type Score struct {
	Correct int
	Total   int
}

// Accuracy is the share of correct answers in percent.
func (s Score) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// LocalSession quizzes from an in-memory pool, typically loaded from an archive.
// A wrong answer keeps the current prompt so it can be retried.
type LocalSession struct {
	pool    []vocabulary.Entry
	next    int
	current *Prompt
	score   Score
	rand    *rand.Rand
}

func NewLocalSession(entries []vocabulary.Entry, random *rand.Rand) (*LocalSession, error) {
	if len(entries) == 0 {
		return nil, ErrNoWordsAvailable
	}
	if random == nil {
		random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	pool := make([]vocabulary.Entry, len(entries))
	copy(pool, entries)
	s := &LocalSession{pool: pool, rand: random}
	s.shuffle()
	return s, nil
}

func (s *LocalSession) shuffle() {
	s.rand.Shuffle(len(s.pool), func(i, j int) {
		s.pool[i], s.pool[j] = s.pool[j], s.pool[i]
	})
	s.next = 0
}

// Next returns the current prompt, or draws a new one when the last was answered or skipped.
func (s *LocalSession) Next() Prompt {
	if s.current != nil {
		return *s.current
	}
	if s.next >= len(s.pool) {
		s.shuffle()
	}
	prompt := Prompt{
		Entry:     s.pool[s.next],
		Mode:      vocabulary.AllModes[s.rand.IntN(len(vocabulary.AllModes))],
		Remaining: len(s.pool),
	}
	s.next++
	s.current = &prompt
	return prompt
}

// Check grades the answer, ignoring surrounding blanks.
func (s *LocalSession) Check(answer string) (Result, error) {
	if s.current == nil {
		return Result{}, ErrNoCurrentPrompt
	}
	expected := s.current.Entry.Field(s.current.Mode)
	result := Result{
		Correct:   strings.TrimSpace(answer) == expected,
		Answer:    expected,
		Remaining: len(s.pool),
	}
	if result.Correct {
		s.score.Correct++
		s.score.Total++
		s.current = nil
	}
	return result, nil
}

// Skip abandons the current prompt and returns its answer.
func (s *LocalSession) Skip() (string, error) {
	if s.current == nil {
		return "", ErrNoCurrentPrompt
	}
	answer := FormatAnswer(s.current.Entry, s.current.Mode)
	s.score.Total++
	s.current = nil
	return answer, nil
}

func (s *LocalSession) Score() Score {
	return s.score
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Total)
}
