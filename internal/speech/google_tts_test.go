package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleTTS_Synthesize(t *testing.T) {
	tests := []struct {
		name              string
		text              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)
		want              []byte
		wantErr           error
	}{
		{
			name: "returns the audio",
			text: " ねこ ",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/translate_tts", r.URL.Path)
				query := r.URL.Query()
				assert.Equal(t, "ja", query.Get("tl"))
				assert.Equal(t, "tw-ob", query.Get("client"))
				assert.Equal(t, "UTF-8", query.Get("ie"))
				assert.Equal(t, "ねこ", query.Get("q"))
				assert.NotEmpty(t, r.Header.Get("User-Agent"))

				w.Header().Set("Content-Type", "audio/mpeg")
				_, _ = w.Write([]byte("ID3 audio"))
			},
			want: []byte("ID3 audio"),
		},
		{
			name:    "empty text",
			text:    "   ",
			wantErr: ErrEmptyText,
		},
		{
			name:    "text longer than the limit",
			text:    strings.Repeat("あ", 11),
			wantErr: ErrTextTooLong,
		},
		{
			name: "text at the limit",
			text: strings.Repeat("あ", 10),
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "audio/mpeg")
				_, _ = w.Write([]byte("mp3"))
			},
			want: []byte("mp3"),
		},
		{
			name: "upstream error status",
			text: "いぬ",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr: ErrUpstream,
		},
		{
			name: "upstream returns a page instead of audio",
			text: "いぬ",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=UTF-8")
				_, _ = w.Write([]byte("<html>captcha</html>"))
			},
			wantErr: ErrUpstream,
		},
		{
			name: "upstream timeout",
			text: "いぬ",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
			},
			wantErr: ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.mockServerHandler == nil {
					t.Error("unexpected request")
					return
				}
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			tts := NewGoogleTTS(Config{
				BaseURL:       server.URL,
				Timeout:       100 * time.Millisecond,
				MaxTextLength: 10,
			})
			defer func() {
				_ = tts.Close()
			}()

			got, err := tts.Synthesize(context.Background(), tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGoogleTTS_Defaults(t *testing.T) {
	tts := NewGoogleTTS(Config{})
	defer func() {
		_ = tts.Close()
	}()
	assert.Equal(t, DefaultLanguage, tts.language)
	assert.Equal(t, DefaultMaxTextLength, tts.MaxTextLength())
}
