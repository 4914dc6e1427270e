package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/team-aura/voicemate/internal/extract"
	"github.com/team-aura/voicemate/internal/language"
)

// manualLangPhrases maps exact language-switch commands to language codes.
// Matching is case-insensitive on the whole input.
var manualLangPhrases = map[string]string{
	"talk in tamil":        "ta",
	"speak tamil":          "ta",
	"தமிழ்ல பேசு":          "ta",
	"talk in hindi":        "hi",
	"speak hindi":          "hi",
	"हिंदी में बोलो":       "hi",
	"talk in malayalam":    "ml",
	"speak malayalam":      "ml",
	"മലയാളത്തിൽ conversar": "ml",
}

// handleProcessInput runs the text pipeline: detect language, update the
// session memory from the input, generate a reply, and optionally hand the
// reply to the speaker. The JSON response is written without waiting for
// playback.
func (r *Router) handleProcessInput(w http.ResponseWriter, req *http.Request) {
	var body struct {
		UserInput    string `json:"user_input"`
		VoiceEnabled bool   `json:"VoiceEnabled"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if body.UserInput == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_input is required"})
		return
	}

	session := sessionKey(req)
	langCode := language.Detect(body.UserInput)

	if name, ok := extract.Name(body.UserInput); ok {
		r.memory.SetName(session, name)
	}
	if issue, ok := extract.Issue(body.UserInput); ok {
		r.memory.SetIssue(session, issue)
	}

	reply := r.generator.Reply(req.Context(), body.UserInput, r.memory.Get(session))

	if body.VoiceEnabled {
		r.speaker.Speak(reply, langCode)
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": reply})
}

// handleChangeLanguage matches the input against the fixed switch-phrase
// table. The result is informational only; nothing is persisted and later
// requests are unaffected.
func (r *Router) handleChangeLanguage(w http.ResponseWriter, req *http.Request) {
	var body struct {
		UserInput string `json:"user_input"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if langCode, ok := manualLangPhrases[strings.ToLower(body.UserInput)]; ok {
		r.logger.Printf("language: manual switch to %s", language.DisplayName(langCode))
		writeJSON(w, http.StatusOK, map[string]string{
			"message":   fmt.Sprintf("Language changed to %s", language.DisplayName(langCode)),
			"lang_code": langCode,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Language not changed. Command not recognized.",
		"lang_code": language.Default,
	})
}

// handleIntro returns the bot's localized self-introduction.
func (r *Router) handleIntro(w http.ResponseWriter, req *http.Request) {
	lang := language.Get(req.URL.Query().Get("lang"))
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   lang.Intro,
		"lang_code": lang.Code,
	})
}
