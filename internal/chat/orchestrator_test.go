package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/querypen/querypen/internal/llm"
	"github.com/querypen/querypen/internal/store"
)

func TestReplyComposesSystemTurnAndHistory(t *testing.T) {
	model := &fakeModel{reply: "There are many orders."}
	orchestrator := &Orchestrator{Model: model, Executor: &fakeExecutor{}}

	transcript := []llm.Message{
		{Role: llm.RoleUser, Content: "how many orders exist"},
		{Role: llm.RoleAssistant, Content: "Let me check."},
		{Role: llm.RoleUser, Content: "please do"},
	}
	turn, err := orchestrator.Reply(context.Background(), transcript)
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if turn.Role != llm.RoleAssistant {
		t.Fatalf("Role = %q", turn.Role)
	}

	if len(model.calls) != 1 {
		t.Fatalf("model calls = %d, want 1", len(model.calls))
	}
	sent := model.calls[0]
	if len(sent) != len(transcript)+1 {
		t.Fatalf("composed messages = %d, want %d", len(sent), len(transcript)+1)
	}
	if sent[0].Role != llm.RoleSystem || !strings.Contains(sent[0].Content, "[SQL]") {
		t.Fatalf("system turn = %+v", sent[0])
	}
	if sent[1] != transcript[0] || sent[3] != transcript[2] {
		t.Fatal("history order not preserved")
	}
}

func TestReplyWithoutExtractionSkipsExecution(t *testing.T) {
	executor := &fakeExecutor{}
	orchestrator := &Orchestrator{
		Model:    &fakeModel{reply: "No query needed."},
		Executor: executor,
	}

	turn, err := orchestrator.Reply(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hello"}})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if turn.Content != "No query needed." {
		t.Fatalf("Content = %q", turn.Content)
	}
	if len(executor.calls) != 0 {
		t.Fatalf("executor calls = %d, want 0", len(executor.calls))
	}
}

func TestReplyExecutesExtractedQueryOnce(t *testing.T) {
	executor := &fakeExecutor{
		result: store.Result{
			Columns:  []store.Column{{Name: "c", Type: "INT8"}},
			Rows:     []map[string]any{{"c": int64(5)}},
			RowCount: 1,
		},
	}
	orchestrator := &Orchestrator{
		Model:    &fakeModel{reply: "Let me check.[SQL]SELECT COUNT(*) AS c FROM Orders[/SQL]"},
		Executor: executor,
	}

	turn, err := orchestrator.Reply(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "how many orders exist"}})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if len(executor.calls) != 1 {
		t.Fatalf("executor calls = %d, want 1", len(executor.calls))
	}
	if executor.calls[0] != "SELECT COUNT(*) AS c FROM Orders" {
		t.Fatalf("executed sql = %q", executor.calls[0])
	}
	if !strings.Contains(turn.Content, "SELECT COUNT(*) AS c FROM Orders") {
		t.Fatalf("reply missing query text: %q", turn.Content)
	}
	if !strings.Contains(turn.Content, "5") {
		t.Fatalf("reply missing result value: %q", turn.Content)
	}
}

func TestReplyAbsorbsExecutionFailure(t *testing.T) {
	executor := &fakeExecutor{err: errors.New(`relation "nosuchtable" does not exist`)}
	orchestrator := &Orchestrator{
		Model:    &fakeModel{reply: "Checking.[SQL]SELECT * FROM NoSuchTable[/SQL]"},
		Executor: executor,
	}

	turn, err := orchestrator.Reply(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "list them"}})
	if err != nil {
		t.Fatalf("Reply() error = %v, want absorbed failure", err)
	}
	if !strings.Contains(turn.Content, "nosuchtable") {
		t.Fatalf("reply missing error message: %q", turn.Content)
	}
}

func TestReplyPropagatesModelFailure(t *testing.T) {
	orchestrator := &Orchestrator{
		Model:    &fakeModel{err: errors.New("rate limited")},
		Executor: &fakeExecutor{},
	}

	_, err := orchestrator.Reply(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("expected model failure to propagate")
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
