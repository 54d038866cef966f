package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Base URLs of the OpenAI-compatible endpoints each provider name maps to.
var defaultBaseURLs = map[string]string{
	"openai":   "https://api.openai.com/v1",
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"alibaba":  "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"gemini":   "https://generativelanguage.googleapis.com/v1beta/openai/",
}

// DefaultBaseURL returns the OpenAI-compatible base URL for a provider name.
func DefaultBaseURL(name string) (string, bool) {
	u, ok := defaultBaseURLs[name]
	return u, ok
}

// ChatCompleter is the subset of *openai.Client the adapter needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAdapter adapts any OpenAI-compatible chat completion API to the Provider interface.
type OpenAIAdapter struct {
	name   string
	model  string
	client ChatCompleter
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter.
func NewOpenAIAdapter(name string, client ChatCompleter, model string) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, model: model, client: client}
}

func (a *OpenAIAdapter) Name() string  { return a.name }
func (a *OpenAIAdapter) Model() string { return a.model }

// GenerateContent implements Provider.
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	chatReq, err := a.toChatRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: empty choices in response", a.name)
	}

	content, err := fromChatMessage(resp.Choices[0].Message)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      content,
		ProviderName: a.name,
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *OpenAIAdapter) toChatRequest(req *Request) (openai.ChatCompletionRequest, error) {
	out := openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		out.Messages = append(out.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: joinText(req.SystemInstruction.Parts),
		})
	}

	for _, msg := range req.Messages {
		converted, err := toChatMessages(msg)
		if err != nil {
			return out, err
		}
		out.Messages = append(out.Messages, converted...)
	}

	for _, tool := range req.Tools {
		out.Tools = append(out.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}

	return out, nil
}

// toChatMessages expands one normalized message. Function responses become
// one tool message each, since the chat API carries a single tool_call_id per message.
func toChatMessages(msg Message) ([]openai.ChatCompletionMessage, error) {
	var out []openai.ChatCompletionMessage

	var calls []openai.ToolCall
	for _, p := range msg.Parts {
		switch {
		case p.FunctionCall != nil:
			args, err := json.Marshal(p.FunctionCall.Args)
			if err != nil {
				return nil, fmt.Errorf("marshal function call args: %w", err)
			}
			calls = append(calls, openai.ToolCall{
				ID:   p.FunctionCall.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      p.FunctionCall.Name,
					Arguments: string(args),
				},
			})
		case p.FunctionResponse != nil:
			body, err := json.Marshal(p.FunctionResponse.Response)
			if err != nil {
				return nil, fmt.Errorf("marshal function response: %w", err)
			}
			out = append(out, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Name:       p.FunctionResponse.Name,
				ToolCallID: p.FunctionResponse.ID,
				Content:    string(body),
			})
		}
	}
	if len(out) > 0 {
		return out, nil
	}

	role := msg.Role
	if role == "" {
		role = RoleUser
	}
	return []openai.ChatCompletionMessage{{
		Role:      role,
		Content:   joinText(msg.Parts),
		ToolCalls: calls,
	}}, nil
}

func fromChatMessage(msg openai.ChatCompletionMessage) (Message, error) {
	out := Message{Role: RoleAssistant}
	if msg.Content != "" {
		out.Parts = append(out.Parts, Part{Text: msg.Content})
	}

	for _, call := range msg.ToolCalls {
		args := map[string]interface{}{}
		if call.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				return out, fmt.Errorf("decode arguments of %s: %w", call.Function.Name, err)
			}
		}
		out.Parts = append(out.Parts, Part{FunctionCall: &FunctionCall{
			ID:   call.ID,
			Name: call.Function.Name,
			Args: args,
		}})
	}
	return out, nil
}

func joinText(parts []Part) string {
	var s string
	for _, p := range parts {
		s += p.Text
	}
	return s
}

func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}
	return err
}
