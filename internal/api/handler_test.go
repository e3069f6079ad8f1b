package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/querypen/querypen/internal/config"
	"github.com/querypen/querypen/internal/llm"
	"github.com/querypen/querypen/internal/store"
)

func TestHealthEndpoint(t *testing.T) {
	h := NewHandler(testConfig(t, nil), Dependencies{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", rr.Code, rr.Body.String())
	}
}

func TestReadyEndpointWithoutChecks(t *testing.T) {
	h := NewHandler(testConfig(t, nil), Dependencies{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/ready", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestReadyEndpointReportsFailingDependency(t *testing.T) {
	h := NewHandler(testConfig(t, nil), Dependencies{
		Readiness: func(_ context.Context) error { return errors.New("db unreachable") },
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/ready", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestAuthRequiredWithoutMiddlewareFailsClosed(t *testing.T) {
	cfg := testConfig(t, map[string]string{"QUERYPEN_AUTH_REQUIRED": "true"})
	h := NewHandler(cfg, Dependencies{Executor: &fakeExecutor{}})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/examples", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestCombineReadinessChecksStopsAtFirstFailure(t *testing.T) {
	var order []int
	combined := CombineReadinessChecks(
		func(_ context.Context) error {
			order = append(order, 1)
			return nil
		},
		nil,
		func(_ context.Context) error {
			order = append(order, 2)
			return errors.New("boom")
		},
		func(_ context.Context) error {
			order = append(order, 3)
			return nil
		},
	)

	err := combined(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("execution order = %#v", order)
	}
}

func testConfig(t *testing.T, overrides map[string]string) config.Config {
	t.Helper()
	cfg, err := config.Load("querypen-api", mapLookup(overrides))
	if err != nil {
		t.Fatalf("config load failed: %v", err)
	}
	return cfg
}

func mapLookup(values map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

type fakeModel struct {
	calls [][]llm.Message
	reply string
	err   error
}

func (f *fakeModel) Complete(_ context.Context, messages []llm.Message) (string, error) {
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeExecutor struct {
	calls  []string
	result store.Result
	err    error
}

func (f *fakeExecutor) Execute(_ context.Context, sqlText string, _ []any) (store.Result, error) {
	f.calls = append(f.calls, sqlText)
	if f.err != nil {
		return store.Result{}, f.err
	}
	return f.result, nil
}
