package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"chat-task-manager/internal/agent"
	"chat-task-manager/pkg/llmprovider"
	"chat-task-manager/pkg/log"
	"chat-task-manager/pkg/retry"
)

// scriptedGenerator returns canned responses in order and records requests.
type scriptedGenerator struct {
	responses []*llmprovider.Response
	errs      []error
	requests  []*llmprovider.Request
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	// Snapshot messages: the orchestrator mutates the request between steps.
	snapshot := *req
	snapshot.Messages = append([]llmprovider.Message{}, req.Messages...)
	g.requests = append(g.requests, &snapshot)

	i := len(g.requests) - 1
	if i < len(g.errs) && g.errs[i] != nil {
		return nil, g.errs[i]
	}
	return g.responses[i], nil
}

func textResp(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: text}}},
		Usage:   &llmprovider.Usage{},
	}
}

func callResp(name string, args map[string]interface{}) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{Name: name, Args: args}}},
		},
		Usage: &llmprovider.Usage{},
	}
}

// recordingTool records executions and returns a fixed result.
type recordingTool struct {
	name   string
	args   []map[string]interface{}
	result interface{}
	err    error
}

func (t *recordingTool) Name() string                       { return t.name }
func (t *recordingTool) Description() string                { return "test tool" }
func (t *recordingTool) Parameters() map[string]interface{} { return map[string]interface{}{"type": "object"} }
func (t *recordingTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	t.args = append(t.args, params)
	return t.result, t.err
}

func fastConfig() Config {
	return Config{
		Timezone: "UTC",
		MaxSteps: 3,
		Retry:    retry.Policy{Attempts: 2, Delay: time.Millisecond},
	}
}

func newTestOrchestrator(gen Generator, tools ...agent.Tool) *Orchestrator {
	registry := agent.NewToolRegistry()
	for _, tool := range tools {
		registry.Register(tool)
	}
	return New(gen, registry, log.Noop(), fastConfig())
}

func TestProcessMessage_DirectAnswer(t *testing.T) {
	gen := &scriptedGenerator{responses: []*llmprovider.Response{textResp("Привет! Чем помочь?")}}
	o := newTestOrchestrator(gen)

	answer, err := o.ProcessMessage(context.Background(), "s1", "привет")
	if err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}
	if answer != "Привет! Чем помочь?" {
		t.Errorf("Unexpected answer: %q", answer)
	}

	req := gen.requests[0]
	if req.SystemInstruction == nil || !strings.Contains(req.SystemInstruction.Parts[0].Text, "Не вычисляй даты самостоятельно") {
		t.Error("Expected system prompt with date pass-through rule")
	}
	if len(req.Messages) != 1 || req.Messages[0].Parts[0].Text != "привет" {
		t.Errorf("Unexpected request messages: %+v", req.Messages)
	}
}

func TestProcessMessage_ToolCallLoop(t *testing.T) {
	gen := &scriptedGenerator{responses: []*llmprovider.Response{
		callResp("add_task", map[string]interface{}{"title": "купить молоко завтра"}),
		textResp("Задача создана."),
	}}
	tool := &recordingTool{name: "add_task", result: map[string]interface{}{"status": "success"}}
	o := newTestOrchestrator(gen, tool)

	answer, err := o.ProcessMessage(context.Background(), "s1", "добавь задачу купить молоко завтра")
	if err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}
	if answer != "Задача создана." {
		t.Errorf("Unexpected answer: %q", answer)
	}

	if len(tool.args) != 1 || tool.args[0]["title"] != "купить молоко завтра" {
		t.Errorf("Tool called with unexpected args: %+v", tool.args)
	}

	// Second request must carry the observe turn: assistant call + tool result.
	second := gen.requests[1]
	last := second.Messages[len(second.Messages)-1]
	if last.Role != "tool" || last.Parts[0].FunctionResponse == nil {
		t.Errorf("Expected trailing tool response message, got %+v", last)
	}
	if last.Parts[0].FunctionResponse.Name != "add_task" {
		t.Errorf("Unexpected tool response name: %s", last.Parts[0].FunctionResponse.Name)
	}
}

func TestProcessMessage_UnknownTool(t *testing.T) {
	gen := &scriptedGenerator{responses: []*llmprovider.Response{
		callResp("nonexistent", nil),
		textResp("Не смог выполнить действие."),
	}}
	o := newTestOrchestrator(gen)

	answer, err := o.ProcessMessage(context.Background(), "s1", "сделай что-нибудь")
	if err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}
	if answer == "" {
		t.Error("Expected an answer despite unknown tool")
	}

	second := gen.requests[1]
	resp := second.Messages[len(second.Messages)-1].Parts[0].FunctionResponse
	payload, ok := resp.Response.(map[string]string)
	if !ok || payload["error"] != "tool not found" {
		t.Errorf("Expected tool-not-found payload, got %+v", resp.Response)
	}
}

func TestProcessMessage_ToolFailureIsObserved(t *testing.T) {
	gen := &scriptedGenerator{responses: []*llmprovider.Response{
		callResp("add_task", map[string]interface{}{"title": "x"}),
		textResp("Произошла ошибка при создании."),
	}}
	tool := &recordingTool{name: "add_task", err: errors.New("storage down")}
	o := newTestOrchestrator(gen, tool)

	if _, err := o.ProcessMessage(context.Background(), "s1", "добавь x"); err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}

	second := gen.requests[1]
	resp := second.Messages[len(second.Messages)-1].Parts[0].FunctionResponse
	payload, ok := resp.Response.(map[string]string)
	if !ok || payload["error"] != "storage down" {
		t.Errorf("Expected error payload, got %+v", resp.Response)
	}
}

func TestProcessMessage_MaxStepsExceeded(t *testing.T) {
	gen := &scriptedGenerator{responses: []*llmprovider.Response{
		callResp("list_tasks", nil),
		callResp("list_tasks", nil),
		callResp("list_tasks", nil),
	}}
	tool := &recordingTool{name: "list_tasks", result: map[string]interface{}{"status": "success"}}
	o := newTestOrchestrator(gen, tool)

	answer, err := o.ProcessMessage(context.Background(), "s1", "что у меня в списке?")
	if err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}
	if answer != MsgMaxStepsExceeded {
		t.Errorf("Expected max-steps message, got %q", answer)
	}
}

func TestProcessMessage_LLMFailure(t *testing.T) {
	boom := errors.New("all providers failed")
	gen := &scriptedGenerator{
		responses: []*llmprovider.Response{nil, nil},
		errs:      []error{boom, boom},
	}
	o := newTestOrchestrator(gen)

	if _, err := o.ProcessMessage(context.Background(), "s1", "привет"); err == nil {
		t.Fatal("Expected error when LLM keeps failing")
	}
}

func TestProcessMessage_SessionMemory(t *testing.T) {
	gen := &scriptedGenerator{responses: []*llmprovider.Response{
		textResp("Запомнил."),
		textResp("Ты просил запомнить молоко."),
	}}
	o := newTestOrchestrator(gen)

	if _, err := o.ProcessMessage(context.Background(), "s1", "запомни: молоко"); err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}
	if _, err := o.ProcessMessage(context.Background(), "s1", "что я просил?"); err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}

	second := gen.requests[1]
	if len(second.Messages) != 3 {
		t.Fatalf("Expected history (2) + new message (1), got %d messages", len(second.Messages))
	}
	if second.Messages[0].Parts[0].Text != "запомни: молоко" {
		t.Errorf("Unexpected first history message: %+v", second.Messages[0])
	}
	if second.Messages[1].Role != "assistant" {
		t.Errorf("Expected assistant history message, got role %q", second.Messages[1].Role)
	}
}

func TestProcessMessage_SessionsAreIsolated(t *testing.T) {
	gen := &scriptedGenerator{responses: []*llmprovider.Response{
		textResp("ok"),
		textResp("ok"),
	}}
	o := newTestOrchestrator(gen)

	o.ProcessMessage(context.Background(), "s1", "первое")
	o.ProcessMessage(context.Background(), "s2", "второе")

	second := gen.requests[1]
	if len(second.Messages) != 1 {
		t.Errorf("Expected fresh session without history, got %d messages", len(second.Messages))
	}
}

// echoGenerator answers every request with a fixed text. Safe for concurrent use.
type echoGenerator struct{}

func (echoGenerator) GenerateContent(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
	return textResp("готово"), nil
}

func TestProcessMessage_ConcurrentSameSession(t *testing.T) {
	o := newTestOrchestrator(echoGenerator{})

	const turns = 4
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := o.ProcessMessage(context.Background(), "shared", fmt.Sprintf("сообщение %d", n)); err != nil {
				t.Errorf("ProcessMessage: %v", err)
			}
		}(i)
	}
	wg.Wait()

	// Every turn contributes a user and an assistant message; none may be lost.
	history := o.sessionHistory("shared")
	if len(history) != 2*turns {
		t.Errorf("expected %d remembered messages, got %d", 2*turns, len(history))
	}
}

func TestSessionHistory_ReturnsSnapshot(t *testing.T) {
	o := newTestOrchestrator(echoGenerator{})
	o.rememberTurn("s1", "вопрос", "ответ")

	history := o.sessionHistory("s1")
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	history[0] = llmprovider.Message{Role: "system", Parts: []llmprovider.Part{{Text: "подмена"}}}
	history = append(history, llmprovider.Message{Role: "user"})

	again := o.sessionHistory("s1")
	if len(again) != 2 {
		t.Fatalf("expected stored history unchanged, got %d messages", len(again))
	}
	if again[0].Role != "user" || again[0].Parts[0].Text != "вопрос" {
		t.Errorf("stored history was mutated through the snapshot: %+v", again[0])
	}
}
