// Package extract scans free-form user text for a self-introduced name and
// a self-reported issue. Matching is deliberately simple substring work:
// the scan is case-insensitive and the first matching issue phrase wins.
package extract

import "strings"

const namePhrase = "my name is"

// issuePhrases are evaluated in this exact order; the first one found in
// the input wins, regardless of position or specificity.
var issuePhrases = []string{
	"i have",
	"i am dealing with",
	"i’m dealing with",
	"i have been diagnosed with",
	"suffering with",
	"i am feeling",
	"i'm feeling",
}

// Name returns the token immediately following the last occurrence of
// "my name is" in text, lower-cased and with surrounding punctuation
// trimmed. The second return is false when the phrase is absent or nothing
// follows it.
func Name(text string) (string, bool) {
	lower := strings.ToLower(text)
	idx := strings.LastIndex(lower, namePhrase)
	if idx < 0 {
		return "", false
	}
	rest := lower[idx+len(namePhrase):]
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", false
	}
	name := strings.Trim(fields[0], ".,!?;:'\"")
	if name == "" {
		return "", false
	}
	return name, true
}

// Issue returns the remainder of text after the first matching issue
// phrase, lower-cased and trimmed. A phrase repeated in the input resolves
// to its last occurrence. The second return is false when no phrase
// matches or the remainder is empty.
func Issue(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, phrase := range issuePhrases {
		idx := strings.LastIndex(lower, phrase)
		if idx < 0 {
			continue
		}
		issue := strings.TrimSpace(lower[idx+len(phrase):])
		if issue == "" {
			return "", false
		}
		return issue, true
	}
	return "", false
}
