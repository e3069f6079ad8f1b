package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/querypen/querypen/internal/chat"
	"github.com/querypen/querypen/internal/llm"
)

type chatRequest struct {
	Messages []llm.Message `json:"messages"`
}

// handleChat runs one turn of the chat-driven SQL round trip. The caller
// owns the transcript and re-sends it in full every turn; nothing is stored
// here. A model failure fails the request; a SQL execution failure does not,
// it is folded into the reply text by the orchestrator.
func handleChat(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Chat == nil {
		writeError(r.Context(), w, http.StatusNotImplemented, "CHAT_NOT_CONFIGURED", "chat is not configured", false, nil)
		return
	}
	if err := requireRole(r, "chat"); err != nil {
		writeError(r.Context(), w, http.StatusForbidden, "FORBIDDEN", err.Error(), false, nil)
		return
	}

	var req chatRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "INVALID_JSON", "invalid chat request body", false, map[string]any{"details": err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		writeError(r.Context(), w, http.StatusBadRequest, "MESSAGES_REQUIRED", "at least one message is required", false, nil)
		return
	}
	for i, message := range req.Messages {
		if !llm.ValidRole(message.Role) {
			writeError(r.Context(), w, http.StatusBadRequest, "INVALID_ROLE", "message role must be system, user, or assistant", false, map[string]any{"index": i})
			return
		}
		if strings.TrimSpace(message.Content) == "" {
			writeError(r.Context(), w, http.StatusBadRequest, "EMPTY_MESSAGE", "message content must not be empty", false, map[string]any{"index": i})
			return
		}
	}

	turn, err := deps.Chat.Reply(r.Context(), req.Messages)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadGateway, "CHAT_FAILED", "failed to process chat request", true, map[string]any{"details": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"response": turn.Content,
		"display":  chat.DisplayText(turn.Content),
	})
}
