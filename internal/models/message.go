package models

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one transcript entry of an interview session. The transcript
// lives only inside the session object and is never persisted; a reload starts
// a fresh interview.
type ChatMessage struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
