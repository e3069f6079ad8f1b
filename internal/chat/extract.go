// Package chat implements the chat-driven SQL round trip: extracting a
// model-proposed query from an assistant reply, executing it, and splicing
// the outcome back into the reply text.
package chat

import "strings"

// Delimiters the model is instructed to wrap executable SQL in. The contract
// is soft: it lives in the system prompt only, so the extractor tolerates the
// model omitting or malforming it.
const (
	openDelimiter  = "[SQL]"
	closeDelimiter = "[/SQL]"
)

// ExtractSQL returns the trimmed interior of the first well-formed
// [SQL]...[/SQL] span in text. Absent or unclosed delimiters are a normal
// outcome, not an error. Later spans in the same text are left untouched.
func ExtractSQL(text string) (string, bool) {
	start := strings.Index(text, openDelimiter)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(openDelimiter):]
	end := strings.Index(rest, closeDelimiter)
	if end < 0 {
		return "", false
	}
	sqlText := strings.TrimSpace(rest[:end])
	if sqlText == "" {
		return "", false
	}
	return sqlText, true
}
