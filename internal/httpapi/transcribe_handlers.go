package httpapi

import (
	"io"
	"net/http"
	"os"

	"github.com/team-aura/voicemate/internal/language"
)

const maxUploadBytes = 25 << 20 // 25 MB audio clip ceiling

// handleTranscribeAudio runs the audio pipeline: persist the upload to a
// temp file, transcribe it, normalize the detected language, generate a
// reply, and dispatch playback. The temp file is removed on every exit
// path.
func (r *Router) handleTranscribeAudio(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, maxUploadBytes)

	file, _, err := req.FormFile("audio")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No audio file uploaded"})
		return
	}
	defer file.Close()

	// No extension on purpose: the decoder sniffs the container.
	tmp, err := os.CreateTemp("", "voicemate-upload-*")
	if err != nil {
		r.logger.Printf("transcribe: temp file: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store upload"})
		return
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		r.logger.Printf("transcribe: save upload: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store upload"})
		return
	}
	if err := tmp.Close(); err != nil {
		r.logger.Printf("transcribe: close upload: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store upload"})
		return
	}

	result, err := r.transcriber.TranscribeFile(req.Context(), path)
	if err != nil {
		r.logger.Printf("transcribe: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	langCode := language.Normalize(result.Language)
	r.logger.Printf("transcribe: text=%q lang=%s", result.Text, langCode)

	session := sessionKey(req)
	reply := r.generator.Reply(req.Context(), result.Text, r.memory.Get(session))

	r.speaker.Speak(reply, langCode)

	writeJSON(w, http.StatusOK, map[string]string{
		"transcription": result.Text,
		"message":       reply,
		"lang_code":     langCode,
	})
}
