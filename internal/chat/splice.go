package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/querypen/querypen/internal/store"
)

// Splice replaces the first delimiter-bounded span in text with a rendering
// of the query's execution outcome. The span boundaries are computed against
// the original, unmodified text, so a literal repeat of the same span later
// in the reply is never substituted twice. Text without a well-formed span
// passes through unchanged.
func Splice(text, sqlText string, result store.Result, execErr error) string {
	start := strings.Index(text, openDelimiter)
	if start < 0 {
		return text
	}
	rest := text[start+len(openDelimiter):]
	end := strings.Index(rest, closeDelimiter)
	if end < 0 {
		return text
	}
	spanEnd := start + len(openDelimiter) + end + len(closeDelimiter)

	var rendering string
	if execErr != nil {
		rendering = fmt.Sprintf("I encountered an error while executing the query: %s", execErr.Error())
	} else {
		rendering = renderSuccess(sqlText, result)
	}
	return text[:start] + rendering + text[spanEnd:]
}

func renderSuccess(sqlText string, result store.Result) string {
	formatted, err := json.MarshalIndent(result.Rows, "", "  ")
	if err != nil {
		formatted = []byte("[]")
	}
	return fmt.Sprintf("Here is the query I used:\n\n%s\n\nAnd here are the results:\n\n%s", sqlText, formatted)
}
