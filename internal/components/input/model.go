package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentdeck/agentdeck/internal/styles"
)

// Model represents the prompt input component
type Model struct {
	textarea textarea.Model
	width    int
}

// New creates a new input model
func New(width int) Model {
	ta := textarea.New()
	ta.Placeholder = "Send a message..."
	ta.Prompt = "┃ "
	ta.CharLimit = 4000
	ta.SetWidth(width - 4)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Focus()

	return Model{
		textarea: ta,
		width:    width,
	}
}

// Init initializes the input component
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the input component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View renders the input component
func (m Model) View() string {
	return styles.InputBorder.Width(m.width - 2).Render(m.textarea.View())
}

// Value returns the trimmed input text
func (m Model) Value() string {
	return strings.TrimSpace(m.textarea.Value())
}

// Clear resets the input
func (m *Model) Clear() {
	m.textarea.Reset()
}

// Focus focuses the input and returns the blink command
func (m *Model) Focus() tea.Cmd {
	return m.textarea.Focus()
}

// Blur removes focus from the input
func (m *Model) Blur() {
	m.textarea.Blur()
}

// Focused reports whether the input has focus
func (m Model) Focused() bool {
	return m.textarea.Focused()
}

// SetWidth updates the input width
func (m *Model) SetWidth(width int) {
	m.width = width
	m.textarea.SetWidth(width - 4)
}
