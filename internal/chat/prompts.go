package chat

import (
	"fmt"
	"strings"

	"github.com/team-aura/voicemate/internal/memory"
)

// Apology is returned in place of a reply whenever the upstream
// chat-completion call fails. This is the only failure recovery the
// generator performs; there is no retry.
const Apology = "I'm sorry, I couldn't process your request right now."

// personaPrompt fixes the assistant identity and domain.
const personaPrompt = "You are Voice Mate, a helpful educational assistant bot also teacher, developed by Team Aura. " +
	"Support queries on attendance, results, GPA, assignments, fees, library, study materials, mental health, events, and exams. " +
	"Help students, teachers, and admins."

// languageConstraint keeps replies inside the four supported languages.
const languageConstraint = "Please respond in hindi, english, tamil, malayalam only, matching the language of the user's input."

// buildSystemPrompt assembles the system instruction: persona, then
// personalization clauses only for fields present in the record, then the
// language constraint.
func buildSystemPrompt(rec memory.Record) string {
	var b strings.Builder
	b.WriteString(personaPrompt)
	if rec.Name != "" {
		fmt.Fprintf(&b, " The user's name is %s.", rec.Name)
	}
	if rec.Issue != "" {
		fmt.Fprintf(&b, " The user is dealing with %s.", rec.Issue)
	}
	b.WriteString(" ")
	b.WriteString(languageConstraint)
	return b.String()
}
