package store

import (
	"context"
	"time"
)

// Column carries the name and database-assigned type identifier of one
// result column, in select-list order.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Result is one statement's output. It is produced fresh per execution and
// lives for a single request/response cycle; nothing caches it.
type Result struct {
	Columns  []Column
	Rows     []map[string]any
	RowCount int
	Duration time.Duration
}

// Executor runs one SQL statement against the sandbox database. Any text
// handed to it is executed verbatim: the playground deliberately accepts
// arbitrary ad-hoc SQL, so there is no validation, sanitization, or
// read-only gate here. Do not expose this to untrusted callers.
type Executor interface {
	Execute(ctx context.Context, sqlText string, params []any) (Result, error)
}
