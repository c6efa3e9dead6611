package ui

import (
	"context"
	"os"
	"slices"
	"strings"

	"jha_chat/pkg/ai"
	"jha_chat/pkg/commands"
	"jha_chat/pkg/ui/styles"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	inputHeight  = 3
	defaultWidth = 80
	headerTitle  = "Jha · colon health assistant"
	footerLabel  = "Enter send | /help topics | /copy | /clear | /quit | Ctrl+C exit"
	typingLabel  = "Jha is typing..."
)

// Assistant is the chat client the front ends talk to.
type Assistant interface {
	commands.CannedReplies
	SendMessage(ctx context.Context, message string, history []ai.ChatMessage) (ai.ChatResponse, error)
	SendMessageWithTypingEffect(ctx context.Context, message string, history []ai.ChatMessage) (ai.ChatResponse, error)
}

type entryKind int

const (
	entryUser entryKind = iota
	entryAssistant
	entryNotice
	entryError
)

type entry struct {
	kind entryKind
	text string
}

// replyMsg carries the result of one SendMessageWithTypingEffect call.
type replyMsg struct {
	prompt ai.ChatMessage
	resp   ai.ChatResponse
	err    error
}

// Model is the Bubble Tea chat screen.
type Model struct {
	ctx        context.Context
	assistant  Assistant
	dispatcher *commands.Dispatcher
	userName   string
	clipboard  Clipboard

	entries []entry
	history []ai.ChatMessage

	input    textarea.Model
	viewport viewport.Model

	width    int
	height   int
	ready    bool
	waiting  bool
	quitting bool
}

// NewModel creates the chat screen and greets userName. Requests in flight
// are cancelled when ctx is done.
func NewModel(ctx context.Context, assistant Assistant, userName string) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	input := textarea.New()
	input.Placeholder = "Ask about polyps, screening or colonoscopy..."
	input.ShowLineNumbers = false
	input.SetHeight(inputHeight)
	input.Focus()

	m := Model{
		ctx:        ctx,
		assistant:  assistant,
		dispatcher: commands.NewDispatcher(),
		userName:   userName,
		clipboard:  NewClipboard(os.Stdout),
		input:      input,
		viewport:   viewport.New(),
	}
	m.appendEntry(entryAssistant, assistant.Welcome(userName).Message)
	return m
}

// Init initializes the model (Bubble Tea lifecycle method)
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates model state (Bubble Tea lifecycle method)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.appendEntry(entryError, msg.err.Error())
			return m, nil
		}
		m.history = append(m.history, msg.prompt, msg.resp.AsMessage())
		m.appendEntry(entryAssistant, msg.resp.Message)
		return m, nil
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.waiting {
		return m, nil
	}
	m.input.Reset()

	if commands.IsCommand(text) {
		return m.runCommand(text)
	}

	prompt := ai.NewUserMessage(text)
	m.appendEntry(entryUser, text)
	m.waiting = true
	return m, sendCmd(m.ctx, m.assistant, prompt, slices.Clone(m.history))
}

func (m Model) runCommand(text string) (tea.Model, tea.Cmd) {
	ctx := commands.NewContext(m.assistant, m.userName, m.history)
	result := m.dispatcher.Dispatch(text, ctx)

	switch result.Action {
	case commands.ResultActionReply:
		m.appendEntry(entryAssistant, result.Response.Message)
	case commands.ResultActionClear:
		m.history = nil
		m.entries = nil
		m.appendEntry(entryNotice, result.Content)
	case commands.ResultActionCopy:
		m.appendEntry(entryNotice, "Copied the last answer to the clipboard.")
		return m, copyCmd(m.clipboard, result.Content)
	case commands.ResultActionQuit:
		m.quitting = true
		return m, tea.Quit
	default:
		m.appendEntry(entryNotice, result.Content)
	}
	return m, nil
}

// sendCmd runs the request off the UI loop; the reply comes back as a replyMsg.
func sendCmd(ctx context.Context, assistant Assistant, prompt ai.ChatMessage, history []ai.ChatMessage) tea.Cmd {
	return func() tea.Msg {
		resp, err := assistant.SendMessageWithTypingEffect(ctx, prompt.Content, history)
		return replyMsg{prompt: prompt, resp: resp, err: err}
	}
}

func copyCmd(clip Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		_ = clip.Copy(text)
		return nil
	}
}

func (m *Model) appendEntry(kind entryKind, text string) {
	m.entries = append(m.entries, entry{kind: kind, text: text})
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(renderTranscript(m.entries, m.contentWidth()))
	m.viewport.GotoBottom()
}

func (m *Model) layout() {
	width := m.contentWidth()
	// header + status line + bordered input
	chrome := 1 + 1 + inputHeight + 2
	vpHeight := m.height - chrome
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.SetWidth(width)
	m.viewport.SetHeight(vpHeight)
	m.input.SetWidth(width - 2)
	m.refresh()
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// View renders the UI (Bubble Tea lifecycle method)
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.HeaderStyle.Render(headerTitle),
		m.viewport.View(),
		m.statusLine(),
		styles.InputBoxStyle.Render(m.input.View()),
	)
}

func (m Model) statusLine() string {
	if m.waiting {
		return styles.NoticeStyle.Render(typingLabel)
	}
	return styles.FooterStyle.Render(footerLabel)
}

func renderTranscript(entries []entry, width int) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, renderEntry(e, width))
	}
	return strings.Join(parts, "\n\n")
}

func renderEntry(e entry, width int) string {
	bodyWidth := width - 2
	if bodyWidth < 10 {
		bodyWidth = 10
	}
	body := ansi.Wordwrap(e.text, bodyWidth, "")
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	body = strings.Join(lines, "\n")

	switch e.kind {
	case entryUser:
		return styles.UserLabelStyle.Render("You") + "\n" + styles.TextStyle.Render(body)
	case entryAssistant:
		return styles.AssistantLabelStyle.Render("Jha") + "\n" + styles.TextStyle.Render(body)
	case entryError:
		return styles.ErrorStyle.Render(body)
	default:
		return styles.NoticeStyle.Render(body)
	}
}
