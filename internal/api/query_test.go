package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/querypen/querypen/internal/store"
)

func TestQueryExecutesAgainstDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRowsWithColumnDefinition(
		sqlmock.NewColumn("total_users").OfType("INT8", int64(0)),
	).AddRow(int64(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_users FROM Users`).WillReturnRows(rows)

	h := NewHandler(testConfig(t, nil), Dependencies{
		Executor: store.NewSQLExecutor(db, nil),
	})

	body := strings.NewReader(`{"sql":"SELECT COUNT(*) AS total_users FROM Users"}`)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/query", body))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Columns []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"columns"`
		Rows  []map[string]any `json:"rows"`
		Stats struct {
			RowCount int `json:"row_count"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Columns) != 1 || resp.Columns[0].Name != "total_users" || resp.Columns[0].Type != "INT8" {
		t.Fatalf("columns = %#v", resp.Columns)
	}
	if len(resp.Rows) != 1 || resp.Rows[0]["total_users"] != float64(3) {
		t.Fatalf("rows = %#v", resp.Rows)
	}
	if resp.Stats.RowCount != 1 {
		t.Fatalf("row_count = %d", resp.Stats.RowCount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQueryRequiresSQL(t *testing.T) {
	h := NewHandler(testConfig(t, nil), Dependencies{Executor: &fakeExecutor{}})

	body := strings.NewReader(`{"sql":""}`)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/query", body))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "SQL_REQUIRED") {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestQueryExecutionFailureIsBadRequest(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery(`SELECT \* FROM NoSuchTable`).
		WillReturnError(errors.New(`relation "nosuchtable" does not exist`))

	h := NewHandler(testConfig(t, nil), Dependencies{
		Executor: store.NewSQLExecutor(db, nil),
	})

	body := strings.NewReader(`{"sql":"SELECT * FROM NoSuchTable"}`)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/query", body))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "QUERY_EXECUTION_FAILED") {
		t.Fatalf("body = %s", rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "does not exist") {
		t.Fatalf("body missing detail: %s", rr.Body.String())
	}
}

func TestQueryWithoutExecutorIsNotImplemented(t *testing.T) {
	h := NewHandler(testConfig(t, nil), Dependencies{})

	body := strings.NewReader(`{"sql":"SELECT 1"}`)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/query", body))

	if rr.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d", rr.Code)
	}
}
