package tools

import (
	"context"
	"strings"

	"reservation-agent/internal/agent"
	"reservation-agent/internal/model"
	"reservation-agent/internal/reservation"
	"reservation-agent/pkg/log"
)

const CreateReservationName = "CreateReservation"

// CreateReservationTool books an appointment from the user's raw message.
// Date and time are parsed on the server, the model only forwards text.
type CreateReservationTool struct {
	l  log.Logger
	uc reservation.UseCase
}

func NewCreateReservationTool(l log.Logger, uc reservation.UseCase) agent.Tool {
	return &CreateReservationTool{l: l, uc: uc}
}

func (t *CreateReservationTool) Name() string {
	return CreateReservationName
}

func (t *CreateReservationTool) Description() string {
	return "사용자의 진료 예약을 생성합니다. 사용자가 입력한 원문 메시지를 수정하지 말고 그대로 user_input으로 전달하세요. " +
		"날짜와 시간은 서버가 직접 해석합니다."
}

func (t *CreateReservationTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_input": map[string]interface{}{
				"type":        "string",
				"description": "사용자가 입력한 원문 메시지 (예: '7월 30일 오후 2시에 예약해줘')",
				"minLength":   1,
			},
		},
		"required": []string{"user_input"},
	}
}

// Execute returns {"message": ...}. Booking failures are reported in the
// message rather than as an error so the model can relay them.
func (t *CreateReservationTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		return nil, ErrMissingScope
	}

	raw, _ := params["user_input"].(string)
	if strings.TrimSpace(raw) == "" {
		return nil, ErrMissingUserInput
	}

	out, err := t.uc.Create(ctx, sc, reservation.CreateInput{RawText: raw})
	if err != nil {
		t.l.Warnf(ctx, "internal.agent.tools.CreateReservation: user=%s: %v", sc.UserID, err)
		return map[string]interface{}{"message": reservation.CreateFailureMessage(err)}, nil
	}

	return map[string]interface{}{"message": out.Message}, nil
}
