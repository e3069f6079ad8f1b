package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/querypen/querypen/internal/observability"
)

// SQLExecutor executes statements through a pooled *sql.DB. Connection
// acquisition is scoped to one statement; the pool guarantees release on
// every exit path.
type SQLExecutor struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSQLExecutor(db *sql.DB, logger *slog.Logger) *SQLExecutor {
	return &SQLExecutor{db: db, logger: logger}
}

func (e *SQLExecutor) Execute(ctx context.Context, sqlText string, params []any) (Result, error) {
	if strings.TrimSpace(sqlText) == "" {
		return Result{}, fmt.Errorf("sql is required")
	}

	start := time.Now()
	result, err := e.execute(ctx, sqlText, params)
	elapsed := time.Since(start)
	observability.ObserveQuery(elapsed, err != nil)

	if err != nil {
		if e.logger != nil {
			e.logger.WarnContext(ctx, "query failed",
				slog.String("sql", sqlText),
				slog.String("duration", elapsed.String()),
				slog.Any("error", err),
			)
		}
		return Result{}, err
	}

	result.Duration = elapsed
	if e.logger != nil {
		e.logger.InfoContext(ctx, "executed query",
			slog.String("sql", sqlText),
			slog.String("duration", elapsed.String()),
			slog.Int("rows", result.RowCount),
		)
	}
	return result, nil
}

func (e *SQLExecutor) execute(ctx context.Context, sqlText string, params []any) (Result, error) {
	rows, err := e.db.QueryContext(ctx, sqlText, params...)
	if err != nil {
		return Result{}, fmt.Errorf("execute query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return Result{}, fmt.Errorf("read column metadata: %w", err)
	}

	columns := make([]Column, 0, len(columnTypes))
	for _, ct := range columnTypes {
		columns = append(columns, Column{Name: ct.Name(), Type: ct.DatabaseTypeName()})
	}

	result := Result{Columns: columns, Rows: []map[string]any{}}
	values := make([]any, len(columns))
	valuePtrs := make([]any, len(columns))
	for i := range values {
		valuePtrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(valuePtrs...); err != nil {
			return Result{}, fmt.Errorf("scan row: %w", err)
		}
		row := make(map[string]any, len(columns))
		for i, column := range columns {
			row[column.Name] = normalizeValue(values[i])
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("iterate rows: %w", err)
	}

	result.RowCount = len(result.Rows)
	return result, nil
}

// normalizeValue keeps driver output JSON-friendly; drivers commonly hand
// back []byte for text and numeric columns.
func normalizeValue(value any) any {
	if raw, ok := value.([]byte); ok {
		return string(raw)
	}
	return value
}
