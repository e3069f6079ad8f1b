package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/querypen/querypen/internal/llm"
	"github.com/querypen/querypen/internal/schema"
)

type generateRequest struct {
	Question string `json:"question"`
}

// handleGenerateQuery turns a natural-language question into a SQL query via
// a single-turn model prompt. The model is instructed to answer with bare
// SQL; no extraction delimiters are involved on this path.
func handleGenerateQuery(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Model == nil {
		writeError(r.Context(), w, http.StatusNotImplemented, "GENERATE_NOT_CONFIGURED", "query generation is not configured", false, nil)
		return
	}
	if err := requireRole(r, "query"); err != nil {
		writeError(r.Context(), w, http.StatusForbidden, "FORBIDDEN", err.Error(), false, nil)
		return
	}

	var req generateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "INVALID_JSON", "invalid generate request body", false, map[string]any{"details": err.Error()})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(r.Context(), w, http.StatusBadRequest, "QUESTION_REQUIRED", "question is required", false, nil)
		return
	}

	reply, err := deps.Model.Complete(r.Context(), []llm.Message{
		{Role: llm.RoleSystem, Content: schema.GeneratePrompt()},
		{Role: llm.RoleUser, Content: req.Question},
	})
	if err != nil {
		writeError(r.Context(), w, http.StatusBadGateway, "GENERATE_FAILED", "failed to generate query", true, map[string]any{"details": err.Error()})
		return
	}

	sqlText := llm.StripMarkdownSQL(reply)
	if sqlText == "" {
		writeError(r.Context(), w, http.StatusBadGateway, "GENERATE_EMPTY", "model returned an empty query", true, nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query": sqlText,
		"model": deps.ModelName,
	})
}
