package reservation

import (
	"context"

	"reservation-agent/internal/model"
)

// UseCase defines the booking operations. The acting user always comes from sc.
type UseCase interface {
	// Create extracts date and time from free text and books it.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// Book stores a reservation whose date and time are already structured.
	Book(ctx context.Context, sc model.Scope, input BookInput) (BookOutput, error)

	// Cancel removes every reservation of the user.
	Cancel(ctx context.Context, sc model.Scope) (CancelOutput, error)

	ListByUser(ctx context.Context, sc model.Scope) (ListOutput, error)
}
