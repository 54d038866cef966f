package orchestrator

// Log prefixes
const (
	LogPrefixProcessQuery = "internal.agent.orchestrator.ProcessQuery"
	LogPrefixClearHistory = "internal.agent.orchestrator.ClearHistory"
)

// Time context template
const (
	TimeContextTemplate = `

[시스템 정보 - 현재 시각]
- 오늘: %s (%s)
- 현재 시각: %s

날짜와 시간은 사용자 메시지에 적힌 그대로 두고, 직접 계산하거나 바꾸어 도구에 전달하지 마.`
)

// System prompt
const (
	SystemPromptAgent = `너는 사용자 요청을 처리하는 진료 예약 AI 비서야. 다음 규칙을 반드시 지켜줘.
1. 사용자의 userId는 '%s'야.
2. 예약 요청(예: '7월 30일 오후 2시에 예약해줘')을 받으면, 사용자의 메시지를 **절대 변형하지 말고 원본 그대로** 'CreateReservation' 도구의 user_input으로 전달해야 해.
3. 예약 취소 요청은 'DeleteReservation' 도구를 사용해야 해.
4. 도구가 돌려준 message는 사용자에게 그대로 전달해.
5. 모든 응답은 반드시 한국어로, 친절하고 명확하게 작성해줘.`
)

// Error messages
const (
	ErrMsgAgentLLMError    = "agent LLM error at step %d"
	ErrMsgMaxStepsExceeded = "요청을 처리하는 데 너무 많은 단계가 필요했습니다. 요청을 조금 더 간단하게 다시 말씀해 주세요."
)

// Log messages
const (
	LogMsgAgentStep          = "Agent step %d/%d"
	LogMsgAgentFinished      = "Agent finished at step %d"
	LogMsgAgentCallingTool   = "Agent calling tool: %s with args: %+v"
	LogMsgToolExecutionError = "Tool %s failed: %v"
	LogMsgAgentMaxSteps      = "Agent exceeded max steps (%d)"
	LogMsgHistoryUnavailable = "history unavailable for user=%s: %v"
)

// Configuration
const (
	MaxAgentSteps = 5
)
