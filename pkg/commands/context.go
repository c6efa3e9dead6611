package commands

import (
	"jha_chat/pkg/ai"
)

// CannedReplies produces the fixed assistant messages that need no network call.
type CannedReplies interface {
	Welcome(userName string) ai.ChatResponse
	Help() ai.ChatResponse
}

// Context contains all the context needed for command execution
type Context struct {
	Replies  CannedReplies
	UserName string
	History  []ai.ChatMessage
	Args     []string
}

// NewContext creates a new command context
func NewContext(replies CannedReplies, userName string, history []ai.ChatMessage) *Context {
	return &Context{
		Replies:  replies,
		UserName: userName,
		History:  history,
	}
}

// LastReply returns the content of the most recent assistant turn.
func (c *Context) LastReply() (string, bool) {
	for i := len(c.History) - 1; i >= 0; i-- {
		if c.History[i].Role == ai.RoleAssistant {
			return c.History[i].Content, true
		}
	}
	return "", false
}
