package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type queryRequest struct {
	SQL    string `json:"sql"`
	Params []any  `json:"params"`
}

// handleQuery executes one ad-hoc statement. There is deliberately no
// statement restriction or read-only gate: the playground's whole purpose is
// arbitrary ad-hoc SQL against the seeded sandbox, which makes this endpoint
// unsuitable for any non-trusted deployment.
func handleQuery(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Executor == nil {
		writeError(r.Context(), w, http.StatusNotImplemented, "QUERY_NOT_CONFIGURED", "query execution is not configured", false, nil)
		return
	}
	if err := requireRole(r, "query"); err != nil {
		writeError(r.Context(), w, http.StatusForbidden, "FORBIDDEN", err.Error(), false, nil)
		return
	}

	var req queryRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "INVALID_JSON", "invalid query request body", false, map[string]any{"details": err.Error()})
		return
	}
	if strings.TrimSpace(req.SQL) == "" {
		writeError(r.Context(), w, http.StatusBadRequest, "SQL_REQUIRED", "sql is required", false, nil)
		return
	}

	result, err := deps.Executor.Execute(r.Context(), req.SQL, req.Params)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "QUERY_EXECUTION_FAILED", "query execution failed", false, map[string]any{"details": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"columns": result.Columns,
		"rows":    result.Rows,
		"stats": map[string]any{
			"duration_ms": result.Duration.Milliseconds(),
			"row_count":   result.RowCount,
		},
	})
}
