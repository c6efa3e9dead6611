package ai

import "time"

// Conversation roles accepted by the provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single turn in a chat conversation.
type ChatMessage struct {
	Role      string // "user" | "assistant"
	Content   string
	Timestamp time.Time
}

// NewUserMessage returns a user turn stamped with the current time.
func NewUserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content, Timestamp: time.Now()}
}

// ChatResponse is the assistant reply produced by every Client operation.
// Role is always "assistant" and IsStreaming is always false.
type ChatResponse struct {
	Message     string
	Role        string
	Timestamp   time.Time
	IsStreaming bool
}

func newAssistantResponse(content string) ChatResponse {
	return ChatResponse{
		Message:     content,
		Role:        RoleAssistant,
		Timestamp:   time.Now(),
		IsStreaming: false,
	}
}

// AsMessage converts the response into a history entry.
func (r ChatResponse) AsMessage() ChatMessage {
	return ChatMessage{Role: r.Role, Content: r.Message, Timestamp: r.Timestamp}
}
