package session

import "context"

// Store persists per-user chat history. Implementations are safe for concurrent use.
type Store interface {
	// Load returns the stored turns, oldest first. Unknown sessions yield an empty slice.
	Load(ctx context.Context, sessionID string) ([]Turn, error)
	// Append adds turns, trims the history and refreshes its expiry.
	Append(ctx context.Context, sessionID string, turns ...Turn) error
	// Clear forgets the session.
	Clear(ctx context.Context, sessionID string) error
}
