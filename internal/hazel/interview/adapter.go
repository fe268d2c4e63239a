package interview

import (
	llmHandlers "hazel-brief-backend/internal/llm_handlers"
	"hazel-brief-backend/internal/models"
)

// toLLMMessages maps the two-role transcript into the three-role message
// shape the gateway sends upstream.
func toLLMMessages(transcript []models.ChatMessage) []llmHandlers.Message {
	out := make([]llmHandlers.Message, 0, len(transcript))
	for _, m := range transcript {
		role := llmHandlers.RoleAssistant
		if m.Role == models.RoleUser {
			role = llmHandlers.RoleUser
		}
		out = append(out, llmHandlers.Message{
			Role:    role,
			Content: m.Text,
		})
	}
	return out
}
