package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Model represents the chat component
type Model struct {
	viewport viewport.Model
	messages []Message
	width    int
	height   int
	ready    bool
}

// New creates a new chat model
func New(width, height int) Model {
	vp := viewport.New(width, height)
	vp.SetContent("")
	vp.YPosition = 0

	return Model{
		viewport: vp,
		messages: []Message{},
		width:    width,
		height:   height,
		ready:    true,
	}
}

// Init initializes the chat component
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the chat component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "pgup":
			m.viewport.ViewUp()
		case "pgdown":
			m.viewport.ViewDown()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the chat component
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.viewport.View()
}

// AddUserMessage adds a user message to the chat
func (m *Model) AddUserMessage(content string) {
	m.messages = append(m.messages, Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: content,
	})
	m.updateContent()
}

// StartAssistantMessage starts a new assistant message for streaming
func (m *Model) StartAssistantMessage() {
	m.messages = append(m.messages, Message{
		ID:          uuid.NewString(),
		Role:        RoleAssistant,
		IsStreaming: true,
	})
	m.updateContent()
}

// AppendToken appends streamed content to the current assistant message
func (m *Model) AppendToken(content string) {
	if len(m.messages) == 0 {
		return
	}
	last := &m.messages[len(m.messages)-1]
	if last.Role != RoleAssistant || !last.IsStreaming {
		return
	}
	last.Content += content
	m.updateContent()
}

// EndAssistantMessage marks the current assistant message as complete
func (m *Model) EndAssistantMessage() {
	if len(m.messages) > 0 {
		m.messages[len(m.messages)-1].IsStreaming = false
	}
	m.updateContent()
}

// SetSize updates the chat dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.updateContent()
}

// updateContent rebuilds the viewport content from messages
func (m *Model) updateContent() {
	var content strings.Builder

	for i, msg := range m.messages {
		content.WriteString(msg.Render(m.width))
		if i < len(m.messages)-1 {
			content.WriteString("\n")
		}
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// Clear clears all messages
func (m *Model) Clear() {
	m.messages = []Message{}
	m.viewport.SetContent("")
}

// IsEmpty returns true if there are no messages
func (m Model) IsEmpty() bool {
	return len(m.messages) == 0
}
