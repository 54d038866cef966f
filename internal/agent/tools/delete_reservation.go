package tools

import (
	"context"

	"reservation-agent/internal/agent"
	"reservation-agent/internal/model"
	"reservation-agent/internal/reservation"
	"reservation-agent/pkg/log"
)

const DeleteReservationName = "DeleteReservation"

// DeleteReservationTool cancels every reservation of the current user.
type DeleteReservationTool struct {
	l  log.Logger
	uc reservation.UseCase
}

func NewDeleteReservationTool(l log.Logger, uc reservation.UseCase) agent.Tool {
	return &DeleteReservationTool{l: l, uc: uc}
}

func (t *DeleteReservationTool) Name() string {
	return DeleteReservationName
}

func (t *DeleteReservationTool) Description() string {
	return "현재 사용자의 모든 진료 예약을 취소합니다. 인자는 필요하지 않습니다."
}

func (t *DeleteReservationTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *DeleteReservationTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		return nil, ErrMissingScope
	}

	out, err := t.uc.Cancel(ctx, sc)
	if err != nil {
		t.l.Warnf(ctx, "internal.agent.tools.DeleteReservation: user=%s: %v", sc.UserID, err)
		return map[string]interface{}{"message": reservation.CancelFailureMessage(err)}, nil
	}

	return map[string]interface{}{"message": out.Message}, nil
}
