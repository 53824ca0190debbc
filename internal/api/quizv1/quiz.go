// Package quizv1 defines the messages of the tango.quiz.v1 API.
// Messages travel as JSON over the Connect protocol.
package quizv1

import (
	"github.com/at-ishikawa/tango/internal/quiz"
	"github.com/at-ishikawa/tango/internal/vocabulary"
)

type GetWordRequest struct {
	Level string `json:"level" validate:"level"`
	// Refresh forces a refresh of the level before drawing the word.
	Refresh bool `json:"refresh,omitempty"`
}

type Word struct {
	ID      string `json:"id"`
	Meaning string `json:"meaning"`
	Kanji   string `json:"kanji"`
	Kana    string `json:"kana"`
}

func NewWord(entry vocabulary.Entry) Word {
	return Word{
		ID:      entry.ID,
		Meaning: entry.Meaning,
		Kanji:   entry.Logographic,
		Kana:    entry.Phonetic,
	}
}

// Entry converts the word back into a vocabulary entry, keeping its identifier.
func (w Word) Entry() vocabulary.Entry {
	return vocabulary.Entry{
		ID:          w.ID,
		Logographic: w.Kanji,
		Phonetic:    w.Kana,
		Meaning:     w.Meaning,
	}
}

type GetWordResponse struct {
	Word           Word   `json:"word"`
	Mode           string `json:"mode"`
	RemainingWords int    `json:"remaining_words"`
}

func NewGetWordResponse(prompt quiz.Prompt) *GetWordResponse {
	return &GetWordResponse{
		Word:           NewWord(prompt.Entry),
		Mode:           string(prompt.Mode),
		RemainingWords: prompt.Remaining,
	}
}

type CheckAnswerRequest struct {
	Level  string `json:"level" validate:"level"`
	WordID string `json:"word_id" validate:"required"`
	Mode   string `json:"mode" validate:"mode"`
	Answer string `json:"answer"`
}

type CheckAnswerResponse struct {
	Correct        bool   `json:"correct"`
	CorrectAnswer  string `json:"correct_answer"`
	RemainingWords int    `json:"remaining_words"`
}
