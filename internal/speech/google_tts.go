// Package speech synthesizes pronunciations of Japanese words.
package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"resty.dev/v3"
)

var (
	ErrEmptyText   = errors.New("text is empty")
	ErrTextTooLong = errors.New("text is too long")
	ErrUpstream    = errors.New("speech service failed")
)

const (
	DefaultBaseURL       = "https://translate.google.com"
	DefaultLanguage      = "ja"
	DefaultTimeout       = 5 * time.Second
	DefaultMaxTextLength = 100

	audioContentType = "audio/mpeg"
	userAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

//go:generate mockgen -source=google_tts.go -destination=../mocks/speech/mock_synthesizer.go -package=mock_speech Synthesizer

// Synthesizer returns MP3 audio reading text aloud.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Config struct {
	BaseURL       string
	Language      string
	Timeout       time.Duration
	MaxTextLength int
}

// GoogleTTS reads text with the public Google Translate text-to-speech endpoint.
type GoogleTTS struct {
	httpClient    *resty.Client
	language      string
	maxTextLength int
}

func NewGoogleTTS(config Config) *GoogleTTS {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Language == "" {
		config.Language = DefaultLanguage
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.MaxTextLength <= 0 {
		config.MaxTextLength = DefaultMaxTextLength
	}

	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetTimeout(config.Timeout)
	client.SetHeader("User-Agent", userAgent)

	return &GoogleTTS{
		httpClient:    client,
		language:      config.Language,
		maxTextLength: config.MaxTextLength,
	}
}

func (tts *GoogleTTS) Close() error {
	return tts.httpClient.Close()
}

// MaxTextLength is the longest accepted text, in characters.
func (tts *GoogleTTS) MaxTextLength() int {
	return tts.maxTextLength
}

func (tts *GoogleTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if length := utf8.RuneCountInString(text); length > tts.maxTextLength {
		return nil, fmt.Errorf("%w: %d characters, at most %d", ErrTextTooLong, length, tts.maxTextLength)
	}

	response, err := tts.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ie":     "UTF-8",
			"tl":     tts.language,
			"client": "tw-ob",
			"q":      text,
		}).
		Get("/translate_tts")
	if err != nil {
		return nil, fmt.Errorf("%w: httpClient.Get > %v", ErrUpstream, err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("%w: response error %d", ErrUpstream, response.StatusCode())
	}
	if contentType := response.Header().Get("Content-Type"); !strings.Contains(contentType, audioContentType) {
		return nil, fmt.Errorf("%w: unexpected content type %q", ErrUpstream, contentType)
	}
	return response.Bytes(), nil
}
