package orchestrator

import (
	"context"
	"fmt"

	"chat-task-manager/pkg/llmprovider"
	"chat-task-manager/pkg/retry"
)

// ProcessMessage runs the reason-act-observe loop for one user message and
// returns the assistant's final text.
func (o *Orchestrator) ProcessMessage(ctx context.Context, sessionID, userInput string) (string, error) {
	history := o.sessionHistory(sessionID)

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: SystemPromptAgent + o.timeContext()}},
		},
		Messages: append(append([]llmprovider.Message{}, history...),
			llmprovider.Message{Role: "user", Parts: []llmprovider.Part{{Text: userInput}}}),
		Tools: o.registry.ToFunctionDefinitions(),
	}

	for step := 0; step < o.cfg.MaxSteps; step++ {
		o.l.Infof(ctx, "Agent step %d/%d", step+1, o.cfg.MaxSteps)

		// Reason
		resp, err := retry.Do(ctx, o.cfg.Retry, o.l, "agent generation",
			func(ctx context.Context) (*llmprovider.Response, error) {
				return o.llm.GenerateContent(ctx, req)
			})
		if err != nil {
			return "", fmt.Errorf("agent LLM error at step %d: %w", step, err)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			// Final answer
			text := resp.Text()
			if text == "" {
				return "", llmprovider.ErrEmptyResponse
			}
			o.l.Infof(ctx, "Agent finished at step %d", step+1)
			o.rememberTurn(sessionID, userInput, text)
			return text, nil
		}

		// Act
		call := calls[0]
		o.l.Infof(ctx, "Agent calling tool: %s with args: %+v", call.Name, call.Args)

		var toolResult interface{}
		tool, ok := o.registry.Get(call.Name)
		if !ok {
			o.l.Errorf(ctx, "Tool %s not found", call.Name)
			toolResult = map[string]string{"error": "tool not found"}
		} else {
			res, err := tool.Execute(ctx, call.Args)
			if err != nil {
				o.l.Errorf(ctx, "Tool %s failed: %v", call.Name, err)
				toolResult = map[string]string{"error": err.Error()}
			} else {
				toolResult = res
			}
		}

		// Observe
		req.Messages = append(req.Messages,
			llmprovider.Message{
				Role:  "assistant",
				Parts: []llmprovider.Part{{FunctionCall: call}},
			},
			llmprovider.Message{
				Role: "tool",
				Parts: []llmprovider.Part{{
					FunctionResponse: &llmprovider.FunctionResponse{
						Name:     call.Name,
						Response: toolResult,
					},
				}},
			})
	}

	o.l.Warnf(ctx, "Agent exceeded max steps (%d)", o.cfg.MaxSteps)
	return MsgMaxStepsExceeded, nil
}

// sessionHistory returns a snapshot of the remembered messages for sessionID.
func (o *Orchestrator) sessionHistory(sessionID string) []llmprovider.Message {
	o.sessionMu.Lock()
	defer o.sessionMu.Unlock()

	if mem, ok := o.sessions.Get(sessionID); ok {
		return append([]llmprovider.Message(nil), mem.Messages...)
	}
	return nil
}

// rememberTurn appends the completed user/assistant exchange to the session,
// keeping only the last MaxSessionHistory messages.
func (o *Orchestrator) rememberTurn(sessionID, userInput, answer string) {
	o.sessionMu.Lock()
	defer o.sessionMu.Unlock()

	mem, ok := o.sessions.Get(sessionID)
	if !ok {
		mem = &SessionMemory{SessionID: sessionID}
	}
	mem.Messages = append(mem.Messages,
		llmprovider.Message{Role: "user", Parts: []llmprovider.Part{{Text: userInput}}},
		llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: answer}}},
	)
	if len(mem.Messages) > MaxSessionHistory {
		mem.Messages = mem.Messages[len(mem.Messages)-MaxSessionHistory:]
	}
	o.sessions.Add(sessionID, mem)
}
