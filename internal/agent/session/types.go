package session

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of the conversation as shown to the model.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
