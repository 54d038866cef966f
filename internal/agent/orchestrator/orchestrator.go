package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"reservation-agent/internal/agent/session"
	"reservation-agent/internal/model"
	"reservation-agent/pkg/llmprovider"
)

// ProcessQuery runs ReAct loop: Reason → Act → Observe.
// The user id is bound to ctx for the tools; the model never supplies it.
func (o *Orchestrator) ProcessQuery(ctx context.Context, userID, message string) (string, error) {
	if userID == "" {
		return "", ErrMissingUser
	}
	ctx = model.SetScopeToContext(ctx, model.Scope{UserID: userID})

	history, err := o.sessions.Load(ctx, userID)
	if err != nil {
		o.l.Warnf(ctx, "%s: "+LogMsgHistoryUnavailable, LogPrefixProcessQuery, userID, err)
		history = nil
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: o.systemPrompt(userID)}},
		},
		Messages:    append(toMessages(history), textMessage(llmprovider.RoleUser, message)),
		Tools:       o.registry.ToFunctionDefinitions(),
		Temperature: o.opts.Temperature,
	}

	for step := 0; step < MaxAgentSteps; step++ {
		o.l.Infof(ctx, LogMsgAgentStep, step+1, MaxAgentSteps)

		// 1. Reason: Ask LLM what to do
		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf(ErrMsgAgentLLMError+": %w", step+1, err)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			answer := strings.TrimSpace(resp.Text())
			if answer == "" {
				return "", ErrEmptyResponse
			}
			o.l.Infof(ctx, LogMsgAgentFinished, step+1)
			o.remember(ctx, userID, message, answer)
			return answer, nil
		}

		// 2. Act: Execute every requested tool
		results := make([]llmprovider.Part, 0, len(calls))
		for _, call := range calls {
			results = append(results, llmprovider.Part{
				FunctionResponse: &llmprovider.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: o.runTool(ctx, call),
				},
			})
		}

		// 3. Observe: Add the call and its results to the conversation
		req.Messages = append(req.Messages,
			llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: resp.Content.Parts},
			llmprovider.Message{Role: llmprovider.RoleTool, Parts: results},
		)
	}

	o.l.Warnf(ctx, LogMsgAgentMaxSteps, MaxAgentSteps)
	o.remember(ctx, userID, message, ErrMsgMaxStepsExceeded)
	return ErrMsgMaxStepsExceeded, nil
}

// ClearHistory forgets the user's conversation.
func (o *Orchestrator) ClearHistory(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrMissingUser
	}
	if err := o.sessions.Clear(ctx, userID); err != nil {
		o.l.Errorf(ctx, "%s: %v", LogPrefixClearHistory, err)
		return err
	}
	return nil
}

func (o *Orchestrator) runTool(ctx context.Context, call llmprovider.FunctionCall) interface{} {
	o.l.Infof(ctx, LogMsgAgentCallingTool, call.Name, call.Args)

	tool, ok := o.registry.Get(call.Name)
	if !ok {
		o.l.Errorf(ctx, "Tool %s not found", call.Name)
		return map[string]string{"error": "tool not found"}
	}
	if err := o.registry.Validate(call.Name, call.Args); err != nil {
		o.l.Warnf(ctx, LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}

	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		o.l.Errorf(ctx, LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}

func (o *Orchestrator) remember(ctx context.Context, userID, message, answer string) {
	err := o.sessions.Append(ctx, userID,
		session.Turn{Role: session.RoleUser, Text: message},
		session.Turn{Role: session.RoleAssistant, Text: answer},
	)
	if err != nil {
		o.l.Warnf(ctx, "%s: save history: %v", LogPrefixProcessQuery, err)
	}
}

func (o *Orchestrator) systemPrompt(userID string) string {
	return fmt.Sprintf(SystemPromptAgent, userID) + buildTimeContext(o.now(), o.opts.Location)
}

func toMessages(turns []session.Turn) []llmprovider.Message {
	msgs := make([]llmprovider.Message, 0, len(turns)+1)
	for _, t := range turns {
		role := llmprovider.RoleUser
		if t.Role == session.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		msgs = append(msgs, textMessage(role, t.Text))
	}
	return msgs
}

func textMessage(role, text string) llmprovider.Message {
	return llmprovider.Message{Role: role, Parts: []llmprovider.Part{{Text: text}}}
}
