package ui

import (
	"context"
	"slices"
	"sync"

	"jha_chat/pkg/ai"

	tea "charm.land/bubbletea/v2"
)

var (
	testKeyEnter = tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	testKeyCtrlC = tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
)

// fakeAssistant answers from a canned function and records every request.
// Welcome and Help come from the real (nil) client.
type fakeAssistant struct {
	*ai.Client

	mu        sync.Mutex
	reply     func(message string) (ai.ChatResponse, error)
	messages  []string
	histories [][]ai.ChatMessage
	contexts  []context.Context
	typing    int
}

func (f *fakeAssistant) SendMessage(ctx context.Context, message string, history []ai.ChatMessage) (ai.ChatResponse, error) {
	f.mu.Lock()
	f.contexts = append(f.contexts, ctx)
	f.messages = append(f.messages, message)
	f.histories = append(f.histories, slices.Clone(history))
	reply := f.reply
	f.mu.Unlock()

	if reply == nil {
		return ai.ChatResponse{Message: "Answer: " + message, Role: ai.RoleAssistant}, nil
	}
	return reply(message)
}

func (f *fakeAssistant) SendMessageWithTypingEffect(ctx context.Context, message string, history []ai.ChatMessage) (ai.ChatResponse, error) {
	f.mu.Lock()
	f.typing++
	f.mu.Unlock()
	return f.SendMessage(ctx, message, history)
}

func sizedModel(assistant Assistant) Model {
	m := NewModel(context.Background(), assistant, "Alice")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

// submitText types text into the input and presses enter.
func submitText(m Model, text string) (Model, tea.Cmd) {
	m.input.SetValue(text)
	updated, cmd := m.Update(testKeyEnter)
	return updated.(Model), cmd
}

// deliver runs cmd and feeds its message back into the model.
func deliver(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	updated, _ := m.Update(cmd())
	return updated.(Model)
}
