package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/team-aura/voicemate/internal/chat"
	"github.com/team-aura/voicemate/internal/memory"
	"github.com/team-aura/voicemate/internal/stt"
)

// Speaker dispatches asynchronous speech synthesis and playback. The HTTP
// response never waits for it.
type Speaker interface {
	Speak(text, langCode string)
}

type Router struct {
	logger      *log.Logger
	memory      *memory.Store
	generator   *chat.Generator
	speaker     Speaker
	transcriber stt.Transcriber
	mux         *http.ServeMux
}

func NewRouter(logger *log.Logger, mem *memory.Store, gen *chat.Generator, speaker Speaker, transcriber stt.Transcriber) http.Handler {
	r := &Router{
		logger:      logger,
		memory:      mem,
		generator:   gen,
		speaker:     speaker,
		transcriber: transcriber,
		mux:         http.NewServeMux(),
	}

	r.routes()
	return withSentryRecovery(withCORS(r.mux))
}

func (r *Router) routes() {
	// Health check
	r.mux.HandleFunc("GET /healthz", r.handleHealthz)

	// Chatbot endpoints
	r.mux.HandleFunc("POST /process_input", r.handleProcessInput)
	r.mux.HandleFunc("POST /transcribe_audio", r.handleTranscribeAudio)
	r.mux.HandleFunc("POST /change_language", r.handleChangeLanguage)
	r.mux.HandleFunc("GET /intro", r.handleIntro)
}

func (r *Router) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// sessionKey returns the client-supplied session id, or "" for the shared
// default session. Clients that never send the header all share one record.
func sessionKey(req *http.Request) string {
	return req.Header.Get("X-Session-ID")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func withSentryRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(req)
				hub.RecoverWithContext(req.Context(), err)
				hub.Flush(2 * time.Second)
				http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, req)
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,X-Session-ID")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}
