package messages

import "github.com/agentdeck/agentdeck/sdk/agentdeck"

// Stream events from the backend
type TokenMsg struct {
	Content string
}

type StreamCompleteMsg struct {
	Content string
}

type StreamErrorMsg struct {
	Message string
}

// Internal app messages
type StreamStartMsg struct{}
type StreamEndMsg struct{}

// Dashboard data
type AgentsLoadedMsg struct {
	Agents []agentdeck.Agent
}

type ProjectsLoadedMsg struct {
	Projects []agentdeck.Project
}

type OrganizationsLoadedMsg struct {
	Organizations []agentdeck.Organization
}

type LoadErrorMsg struct {
	Message string
}
