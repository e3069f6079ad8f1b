package api

import (
	"net/http"

	"github.com/querypen/querypen/internal/schema"
)

func handleListExamples(_ Dependencies, w http.ResponseWriter, r *http.Request) {
	if err := requireRole(r, "query"); err != nil {
		writeError(r.Context(), w, http.StatusForbidden, "FORBIDDEN", err.Error(), false, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"queries": schema.ExampleQueries(),
	})
}

func handleSchema(_ Dependencies, w http.ResponseWriter, r *http.Request) {
	if err := requireRole(r, "query"); err != nil {
		writeError(r.Context(), w, http.StatusForbidden, "FORBIDDEN", err.Error(), false, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"schema": schema.Descriptor,
	})
}
