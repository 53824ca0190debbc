package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/at-ishikawa/tango/internal/speech"
)

const maxSpeechRequestBytes = 4 * 1024

type speakRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// SpeechHandler proxies pronunciations from a speech synthesizer.
// Requests beyond the limiter's rate are rejected rather than queued.
type SpeechHandler struct {
	synthesizer speech.Synthesizer
	limiter     *rate.Limiter
	logger      *slog.Logger
}

func NewSpeechHandler(synthesizer speech.Synthesizer, limiter *rate.Limiter, logger *slog.Logger) *SpeechHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpeechHandler{
		synthesizer: synthesizer,
		limiter:     limiter,
		logger:      logger.With("component", "speech_handler"),
	}
}

func (h *SpeechHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.limiter.Allow() {
		writeJSONError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req speakRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSpeechRequestBytes)).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	audio, err := h.synthesizer.Synthesize(r.Context(), req.Text)
	switch {
	case err == nil:
	case errors.Is(err, speech.ErrEmptyText), errors.Is(err, speech.ErrTextTooLong):
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	default:
		h.logger.Warn("speech synthesis failed", "error", err)
		writeJSONError(w, http.StatusBadGateway, "speech service unavailable")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}
