package llmprovider

import (
	"context"
	"encoding/json"

	"chat-task-manager/pkg/deepseek"
	"chat-task-manager/pkg/gemini"
	"chat-task-manager/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := gemini.GenerateRequest{
		SystemInstruction: convertToGeminiSystem(req.SystemInstruction),
		Contents:          convertToGeminiContents(req.Messages),
		Tools:             convertToGeminiTools(req.Tools),
	}
	if req.Temperature != 0 || req.MaxTokens != 0 {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: "gemini", Err: err}
	}
	if len(resp.Candidates) == 0 {
		return nil, &ProviderError{Provider: "gemini", Err: ErrEmptyResponse}
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Candidates[0].Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiSystem(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		parts := make([]gemini.Part, len(msg.Parts))
		for j, p := range msg.Parts {
			parts[j] = gemini.Part{Text: p.Text}
			if p.FunctionCall != nil {
				parts[j].FunctionCall = &gemini.FunctionCall{
					Name: p.FunctionCall.Name,
					Args: p.FunctionCall.Args,
				}
			}
			if p.FunctionResponse != nil {
				parts[j].FunctionResponse = &gemini.FunctionResponse{
					Name:     p.FunctionResponse.Name,
					Response: p.FunctionResponse.Response,
				}
			}
		}
		contents[i] = gemini.Content{Role: geminiRole(msg.Role), Parts: parts}
	}
	return contents
}

// geminiRole maps normalized roles to the Gemini wire roles. The API knows
// only "user" and "model"; tool results travel as user turns.
func geminiRole(role string) string {
	switch role {
	case "assistant":
		return "model"
	case "tool", "system":
		return "user"
	default:
		return role
	}
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	if len(tools) == 0 {
		return nil
	}
	decls := make([]gemini.FunctionDeclaration, len(tools))
	for i, t := range tools {
		decls[i] = gemini.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return []gemini.Tool{{FunctionDeclarations: decls}}
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, 0, len(content.Parts))
	for _, p := range content.Parts {
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		parts = append(parts, part)
	}
	return Message{Role: "assistant", Parts: parts}
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := deepseek.Request{
		Messages:    convertToDeepSeekMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if len(req.Tools) > 0 {
		dsReq.Tools = convertToDeepSeekTools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, &ProviderError{Provider: "deepseek", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: "deepseek", Err: ErrEmptyResponse}
	}

	return &Response{
		Content:      convertFromChatMessage(resp.Choices[0].Message.Content, deepseekToolCalls(resp.Choices[0].Message.ToolCalls)),
		ProviderName: "deepseek",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for DeepSeek
func convertToDeepSeekMessages(req *Request) []deepseek.Message {
	messages := make([]deepseek.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		messages = append(messages, deepseek.Message{
			Role:    "system",
			Content: req.SystemInstruction.Parts[0].Text,
		})
	}
	for _, msg := range req.Messages {
		for _, part := range msg.Parts {
			dsMsg := deepseek.Message{Role: msg.Role, Content: part.Text}
			if part.FunctionCall != nil {
				argsJSON, _ := json.Marshal(part.FunctionCall.Args)
				dsMsg.ToolCalls = []deepseek.ToolCall{{
					ID:   "call_" + part.FunctionCall.Name,
					Type: "function",
					Function: deepseek.FunctionCall{
						Name:      part.FunctionCall.Name,
						Arguments: string(argsJSON),
					},
				}}
			}
			if part.FunctionResponse != nil {
				dsMsg.Role = "tool"
				dsMsg.ToolCallID = "call_" + part.FunctionResponse.Name
				responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
				dsMsg.Content = string(responseJSON)
			}
			messages = append(messages, dsMsg)
		}
	}
	return messages
}

func convertToDeepSeekTools(tools []Tool) []deepseek.Tool {
	dsTools := make([]deepseek.Tool, len(tools))
	for i, t := range tools {
		dsTools[i] = deepseek.Tool{
			Type: "function",
			Function: deepseek.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return dsTools
}

func deepseekToolCalls(calls []deepseek.ToolCall) []*FunctionCall {
	out := make([]*FunctionCall, 0, len(calls))
	for _, tc := range calls {
		var args map[string]interface{}
		json.Unmarshal([]byte(tc.Function.Arguments), &args)
		out = append(out, &FunctionCall{Name: tc.Function.Name, Args: args})
	}
	return out
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// It covers any OpenAI-compatible endpoint (OpenAI itself, OpenRouter, ...).
type OpenAIAdapter struct {
	client openai.IOpenAI
	name   string
}

// NewOpenAIAdapter creates a new adapter. name is the provider name reported
// in logs and responses ("openai", "openrouter", ...).
func NewOpenAIAdapter(client openai.IOpenAI, name string) *OpenAIAdapter {
	if name == "" {
		name = "openai"
	}
	return &OpenAIAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := openai.Request{
		Messages:    convertToOpenAIMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if len(req.Tools) > 0 {
		oaReq.Tools = convertToOpenAITools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: a.name, Err: ErrEmptyResponse}
	}

	return &Response{
		Content:      convertFromChatMessage(resp.Choices[0].Message.Content, openaiToolCalls(resp.Choices[0].Message.ToolCalls)),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for OpenAI
func convertToOpenAIMessages(req *Request) []openai.Message {
	messages := make([]openai.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		messages = append(messages, openai.Message{
			Role:    "system",
			Content: req.SystemInstruction.Parts[0].Text,
		})
	}
	for _, msg := range req.Messages {
		for _, part := range msg.Parts {
			oaMsg := openai.Message{Role: msg.Role, Content: part.Text}
			if part.FunctionCall != nil {
				argsJSON, _ := json.Marshal(part.FunctionCall.Args)
				oaMsg.ToolCalls = []openai.ToolCall{{
					ID:   "call_" + part.FunctionCall.Name,
					Type: "function",
					Function: openai.FunctionCall{
						Name:      part.FunctionCall.Name,
						Arguments: string(argsJSON),
					},
				}}
			}
			if part.FunctionResponse != nil {
				oaMsg.Role = "tool"
				oaMsg.ToolCallID = "call_" + part.FunctionResponse.Name
				responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
				oaMsg.Content = string(responseJSON)
			}
			messages = append(messages, oaMsg)
		}
	}
	return messages
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	oaTools := make([]openai.Tool, len(tools))
	for i, t := range tools {
		oaTools[i] = openai.Tool{
			Type: "function",
			Function: openai.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return oaTools
}

func openaiToolCalls(calls []openai.ToolCall) []*FunctionCall {
	out := make([]*FunctionCall, 0, len(calls))
	for _, tc := range calls {
		var args map[string]interface{}
		json.Unmarshal([]byte(tc.Function.Arguments), &args)
		out = append(out, &FunctionCall{Name: tc.Function.Name, Args: args})
	}
	return out
}

// convertFromChatMessage builds a normalized assistant message from an
// OpenAI-style choice: optional text content plus tool calls.
func convertFromChatMessage(content string, calls []*FunctionCall) Message {
	parts := []Part{}
	if content != "" {
		parts = append(parts, Part{Text: content})
	}
	for _, fc := range calls {
		parts = append(parts, Part{FunctionCall: fc})
	}
	return Message{Role: "assistant", Parts: parts}
}
