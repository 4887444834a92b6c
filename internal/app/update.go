package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentdeck/agentdeck/internal/components/objectlist"
	"github.com/agentdeck/agentdeck/internal/messages"
	"github.com/agentdeck/agentdeck/sdk/agentdeck"
)

// Update handles all application messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Reserve space for: tab bar (1), input (5), status bar (1), padding (2)
		bodyHeight := msg.Height - 9
		if bodyHeight < 5 {
			bodyHeight = 5
		}

		m.agents.SetSize(msg.Width, bodyHeight+5)
		m.projects.SetSize(msg.Width, bodyHeight+5)
		m.chat.SetSize(msg.Width, bodyHeight)
		m.input.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.state == StateStreaming && m.cancel != nil {
				// Cancel the current stream
				m.cancel()
				m.state = StateIdle
				m.chat.EndAssistantMessage()
				return m, m.input.Focus()
			}
			return m, tea.Quit

		case "esc":
			if m.state == StateStreaming && m.cancel != nil {
				m.cancel()
				m.state = StateIdle
				m.chat.EndAssistantMessage()
				return m, m.input.Focus()
			}
			return m, tea.Quit

		case "tab":
			if m.state != StateStreaming {
				m.tab = (m.tab + 1) % Tab(len(tabNames))
			}
			return m, nil

		case "shift+tab":
			if m.state != StateStreaming {
				m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			}
			return m, nil

		case "enter":
			if m.tab == TabChat && m.state == StateIdle && m.input.Value() != "" {
				return m.sendMessage()
			}

		case "r":
			// Refresh dashboard data
			if m.tab == TabAgents {
				return m, m.loadAgents()
			}
			if m.tab == TabProjects {
				return m, m.loadProjects()
			}

		case "ctrl+l":
			if m.tab == TabChat {
				m.chat.Clear()
				return m, nil
			}
		}

	// Stream events
	case messages.StreamStartMsg:
		m.state = StateStreaming
		m.chat.StartAssistantMessage()
		return m, nil

	case messages.TokenMsg:
		m.chat.AppendToken(msg.Content)
		return m, nil

	case messages.StreamCompleteMsg:
		m.chat.EndAssistantMessage()
		m.state = StateIdle
		return m, m.input.Focus()

	case messages.StreamErrorMsg:
		m.err = fmt.Errorf("%s", msg.Message)
		m.state = StateError
		m.chat.EndAssistantMessage()
		return m, m.input.Focus()

	case messages.StreamEndMsg:
		if m.state == StateStreaming {
			m.chat.EndAssistantMessage()
			m.state = StateIdle
		}
		return m, m.input.Focus()

	// Dashboard data
	case messages.AgentsLoadedMsg:
		items := make([]objectlist.Item, 0, len(msg.Agents))
		for _, a := range msg.Agents {
			items = append(items, objectlist.Item{
				ID:     a.ID,
				Title:  a.Name,
				Detail: fmt.Sprintf("%s · %s", a.Model, a.Description),
			})
		}
		m.agents.SetItems(items)
		return m, nil

	case messages.ProjectsLoadedMsg:
		items := make([]objectlist.Item, 0, len(msg.Projects))
		for _, p := range msg.Projects {
			items = append(items, objectlist.Item{
				ID:     p.ID,
				Title:  p.Name,
				Detail: fmt.Sprintf("%s · %s", p.Status, p.Description),
			})
		}
		m.projects.SetItems(items)
		return m, nil

	case messages.LoadErrorMsg:
		m.err = fmt.Errorf("%s", msg.Message)
		m.state = StateError
		return m, nil
	}

	// Route remaining messages to the active view
	switch m.tab {
	case TabAgents:
		var cmd tea.Cmd
		m.agents, cmd = m.agents.Update(msg)
		cmds = append(cmds, cmd)
	case TabProjects:
		var cmd tea.Cmd
		m.projects, cmd = m.projects.Update(msg)
		cmds = append(cmds, cmd)
	case TabChat:
		if m.state == StateIdle {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// sendMessage sends the current input to the backend
func (m Model) sendMessage() (tea.Model, tea.Cmd) {
	content := m.input.Value()

	m.chat.AddUserMessage(content)
	m.input.Clear()
	m.input.Blur()

	m.ctx, m.cancel = context.WithCancel(context.Background())

	return m, m.streamMessage(m.ctx, content)
}

// streamMessage starts the organization message stream. Events arrive on
// the stream goroutine, so they are forwarded through program.Send rather
// than returned as a command result.
func (m Model) streamMessage(ctx context.Context, content string) tea.Cmd {
	client := m.client
	orgID := m.orgID
	shared := m.shared

	return func() tea.Msg {
		go func() {
			p := shared.GetProgram()
			if p == nil {
				return
			}

			client.StreamOrganizationMessage(ctx, orgID, content, agentdeck.StreamHandlers{
				OnChunk: func(ev agentdeck.StreamEvent) {
					p.Send(messages.TokenMsg{Content: ev.Content})
				},
				OnError: func(err error) {
					p.Send(messages.StreamErrorMsg{Message: err.Error()})
				},
				OnComplete: func(ev agentdeck.StreamEvent) {
					p.Send(messages.StreamCompleteMsg{Content: ev.Content})
				},
			})
			p.Send(messages.StreamEndMsg{})
		}()

		return messages.StreamStartMsg{}
	}
}

// loadAgents fetches the organization's agents
func (m Model) loadAgents() tea.Cmd {
	client := m.client
	orgID := m.orgID

	return func() tea.Msg {
		agents, err := client.ListAgents(context.Background(), agentdeck.String(orgID))
		if err != nil {
			return messages.LoadErrorMsg{Message: err.Error()}
		}
		return messages.AgentsLoadedMsg{Agents: agents}
	}
}

// loadProjects fetches the organization's projects
func (m Model) loadProjects() tea.Cmd {
	client := m.client
	orgID := m.orgID

	return func() tea.Msg {
		projects, err := client.ListProjects(context.Background(), agentdeck.String(orgID))
		if err != nil {
			return messages.LoadErrorMsg{Message: err.Error()}
		}
		return messages.ProjectsLoadedMsg{Projects: projects}
	}
}
