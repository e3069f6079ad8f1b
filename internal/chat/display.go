package chat

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	sqlSpanPattern    = regexp.MustCompile(`(?s)\[SQL\].*?\[/SQL\]`)
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*?\}`)
)

// DisplayText is the cosmetic rendering of an assistant reply for the chat
// surface the user reads. Unlike Splice, it rewrites ALL delimiter spans, not
// just the first. It is lossy and must never feed back into the model; the
// raw spliced reply is what goes into conversation history.
func DisplayText(text string) string {
	text = sqlSpanPattern.ReplaceAllString(text, "I used the following SQL query:")
	text = jsonObjectPattern.ReplaceAllStringFunc(text, func(match string) string {
		flattened, ok := flattenJSONObject(match)
		if !ok {
			return match
		}
		return flattened
	})
	return strings.ReplaceAll(text, ". ", ".\n")
}

// flattenJSONObject turns a brace-delimited JSON object into "key: value"
// comma-joined text. Substrings that merely look like JSON pass through
// untouched; a parse failure is a normal outcome, never an error.
func flattenJSONObject(candidate string) (string, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return "", false
	}

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", key, obj[key]))
	}
	return strings.Join(parts, ", "), true
}
