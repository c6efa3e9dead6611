package commands

import (
	"strings"
)

// HelpHandler handles the /help command
type HelpHandler struct{}

func (h *HelpHandler) Name() string        { return "/help" }
func (h *HelpHandler) Description() string { return "List the topics Jha can answer" }

func (h *HelpHandler) Execute(ctx *Context) *Result {
	resp := ctx.Replies.Help()
	return &Result{Title: "Help", Response: &resp, Action: ResultActionReply}
}

// WelcomeHandler handles the /welcome command
type WelcomeHandler struct{}

func (h *WelcomeHandler) Name() string        { return "/welcome" }
func (h *WelcomeHandler) Description() string { return "Show the greeting again (optionally for a name)" }

func (h *WelcomeHandler) Execute(ctx *Context) *Result {
	name := ctx.UserName
	if len(ctx.Args) > 0 {
		name = strings.Join(ctx.Args, " ")
	}
	resp := ctx.Replies.Welcome(name)
	return &Result{Title: "Welcome", Response: &resp, Action: ResultActionReply}
}

// ClearHandler handles the /clear command
type ClearHandler struct{}

func (h *ClearHandler) Name() string        { return "/clear" }
func (h *ClearHandler) Description() string { return "Forget this conversation and start over" }

func (h *ClearHandler) Execute(ctx *Context) *Result {
	return &Result{Title: "Clear", Content: "Conversation cleared.", Action: ResultActionClear}
}

// CopyHandler handles the /copy command
type CopyHandler struct{}

func (h *CopyHandler) Name() string        { return "/copy" }
func (h *CopyHandler) Description() string { return "Copy the last answer to the clipboard" }

func (h *CopyHandler) Execute(ctx *Context) *Result {
	reply, ok := ctx.LastReply()
	if !ok {
		return &Result{Title: "Copy", Content: "No answer to copy yet."}
	}
	return &Result{Title: "Copy", Content: reply, Action: ResultActionCopy}
}

// QuitHandler handles the /quit command
type QuitHandler struct{}

func (h *QuitHandler) Name() string        { return "/quit" }
func (h *QuitHandler) Description() string { return "Exit" }

func (h *QuitHandler) Execute(ctx *Context) *Result {
	return &Result{Title: "Quit", Action: ResultActionQuit}
}
