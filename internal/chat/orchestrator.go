package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/querypen/querypen/internal/llm"
	"github.com/querypen/querypen/internal/observability"
	"github.com/querypen/querypen/internal/schema"
	"github.com/querypen/querypen/internal/store"
)

// Orchestrator runs one chat turn. It is stateless across requests: the
// transcript arrives as input, one assistant turn goes back, nothing is
// persisted server-side. Dependencies are injected so tests can substitute
// deterministic fakes.
type Orchestrator struct {
	Model    llm.Client
	Executor store.Executor
	Logger   *slog.Logger
}

// Reply produces exactly one assistant turn for the caller-supplied
// transcript. The pipeline issues exactly one model call and at most one
// database execution. A model failure is terminal for the request and is
// returned as an error; a SQL execution failure is absorbed into the reply
// text and never aborts the turn.
func (o *Orchestrator) Reply(ctx context.Context, transcript []llm.Message) (llm.Message, error) {
	if o.Model == nil {
		return llm.Message{}, fmt.Errorf("model client is required")
	}

	messages := make([]llm.Message, 0, len(transcript)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: schema.ChatPrompt()})
	messages = append(messages, transcript...)

	replyText, err := o.Model.Complete(ctx, messages)
	if err != nil {
		return llm.Message{}, fmt.Errorf("model completion: %w", err)
	}

	sqlText, extracted := ExtractSQL(replyText)
	absorbedFailure := false
	if extracted {
		result, execErr := o.executeOnce(ctx, sqlText)
		if execErr != nil {
			absorbedFailure = true
			if o.Logger != nil {
				o.Logger.WarnContext(ctx, "chat query failed",
					slog.String("sql", sqlText),
					slog.Any("error", execErr),
				)
			}
		}
		replyText = Splice(replyText, sqlText, result, execErr)
	}

	observability.ObserveChatTurn(extracted, absorbedFailure)
	return llm.Message{Role: llm.RoleAssistant, Content: replyText}, nil
}

func (o *Orchestrator) executeOnce(ctx context.Context, sqlText string) (store.Result, error) {
	if o.Executor == nil {
		return store.Result{}, fmt.Errorf("query execution is not configured")
	}
	return o.Executor.Execute(ctx, sqlText, nil)
}
