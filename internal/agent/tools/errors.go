package tools

import "errors"

var (
	ErrMissingScope     = errors.New("tools: no user scope in context")
	ErrMissingUserInput = errors.New("tools: user_input is required")
)
