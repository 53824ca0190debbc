package server

import (
	"net/http"

	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/tango/internal/api/quizv1/quizv1connect"
)

const speakPath = "/speak"

// NewHTTPHandler mounts the quiz service and the speech proxy, and serves them
// over HTTP/1.1 and cleartext HTTP/2 with CORS for the allowed origins.
func NewHTTPHandler(quizHandler *QuizHandler, speechHandler *SpeechHandler, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	path, handler := quizv1connect.NewQuizServiceHandler(quizHandler)
	mux.Handle(path, handler)
	mux.Handle(speakPath, speechHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		MaxAge:         3600,
	})
	return corsHandler.Handler(h2c.NewHandler(mux, &http2.Server{}))
}
