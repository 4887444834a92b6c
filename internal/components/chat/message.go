package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentdeck/agentdeck/internal/styles"
)

// Role represents who sent the message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a chat message
type Message struct {
	ID          string
	Role        Role
	Content     string
	IsStreaming bool
}

// Render renders a message with the given width
func (m Message) Render(width int) string {
	var sb strings.Builder

	switch m.Role {
	case RoleUser:
		sb.WriteString(styles.UserLabel.Render("You"))
		sb.WriteString("\n")
	case RoleAssistant:
		sb.WriteString(styles.AssistantLabel.Render("Assistant"))
		sb.WriteString("\n")
	}

	content := m.Content
	if m.Role == RoleAssistant && content != "" && !m.IsStreaming {
		// Markdown rendering is deferred until the message is complete;
		// re-rendering on every token is too slow for long replies.
		rendered, err := renderMarkdown(content, width-4)
		if err == nil {
			content = strings.TrimSpace(rendered)
		}
	}

	if m.IsStreaming {
		content += styles.StreamingCursor.Render("▊")
	}

	switch m.Role {
	case RoleUser:
		sb.WriteString(styles.UserMessage.Width(width - 2).Render(content))
	case RoleAssistant:
		sb.WriteString(styles.AssistantMessage.Width(width - 2).Render(content))
	}

	return sb.String()
}

// renderMarkdown renders markdown content for the terminal
func renderMarkdown(content string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content, err
	}
	return r.Render(content)
}

// WelcomeText is shown when the chat is empty.
var WelcomeText = "Ask the organization's assistant anything.\n\nEnter: send • Tab: switch view • Ctrl+C: quit"

// HelpText returns the help text shown at the bottom
func HelpText() string {
	return lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render("Enter: send • Ctrl+C: quit")
}
