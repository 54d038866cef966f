package http

import (
	"errors"
	"fmt"
)

var (
	errMissingFields  = errors.New("message와 userId는 필수입니다.")
	errMessageTooLong = fmt.Errorf("message는 %d자 이하여야 합니다.", maxMessageRunes)
	errAgentFailed    = errors.New("요청을 처리하는 중 오류가 발생했습니다. 잠시 후 다시 시도해 주세요.")
)
