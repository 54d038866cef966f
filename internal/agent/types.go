package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"reservation-agent/pkg/llmprovider"
)

// Tool represents an agent tool that can be called by LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

type entry struct {
	tool      Tool
	schema    *gojsonschema.Schema
	schemaErr error
}

// ToolRegistry manages available tools. Safe for concurrent use.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]entry
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]entry),
	}
}

// Register adds a tool to the registry, replacing any tool with the same name.
func (r *ToolRegistry) Register(tool Tool) {
	e := entry{tool: tool}
	if params := tool.Parameters(); params != nil {
		e.schema, e.schemaErr = gojsonschema.NewSchema(gojsonschema.NewGoLoader(params))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = e
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.tools[name]
	return e.tool, ok
}

// List returns all registered tools ordered by name.
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	tools := make([]Tool, 0, len(r.tools))
	for _, e := range r.tools {
		tools = append(tools, e.tool)
	}
	r.mu.RUnlock()

	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// ToFunctionDefinitions converts tools to LLM function calling format.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	list := r.List()
	defs := make([]llmprovider.Tool, 0, len(list))
	for _, tool := range list {
		defs = append(defs, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return defs
}

// Validate checks args against the named tool's parameter schema.
func (r *ToolRegistry) Validate(name string, args map[string]interface{}) error {
	r.mu.RLock()
	e, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	if e.schemaErr != nil {
		return fmt.Errorf("tool %s: compile schema: %w", name, e.schemaErr)
	}
	if e.schema == nil {
		return nil
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	result, err := e.schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("tool %s: validate: %w", name, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			problems = append(problems, re.String())
		}
		return fmt.Errorf("%w: %s: %s", ErrInvalidArguments, name, strings.Join(problems, "; "))
	}
	return nil
}
