package agentdeck

import "encoding/json"

// Agent is a configured assistant owned by an organization.
type Agent struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Model          string          `json:"model"`
	SystemPrompt   string          `json:"systemPrompt,omitempty"`
	Config         json.RawMessage `json:"config,omitempty"`
	ToolIDs        []string        `json:"toolIDs,omitempty"`
	Time           Timestamps      `json:"time"`
}

// EffectiveConfig overlays the agent's config onto the platform defaults.
func (a *Agent) EffectiveConfig(defaults []byte) ([]byte, error) {
	return MergeConfig(defaults, a.Config)
}

// CreateAgentRequest is the request body for creating an agent.
type CreateAgentRequest struct {
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	Model          string          `json:"model"`
	Description    *string         `json:"description,omitempty"`
	SystemPrompt   *string         `json:"systemPrompt,omitempty"`
	Config         json.RawMessage `json:"config,omitempty"`
	ToolIDs        []string        `json:"toolIDs,omitempty"`
}

// UpdateAgentRequest is the request body for updating an agent. Only set
// fields are changed.
type UpdateAgentRequest struct {
	Name         *string         `json:"name,omitempty"`
	Model        *string         `json:"model,omitempty"`
	Description  *string         `json:"description,omitempty"`
	SystemPrompt *string         `json:"systemPrompt,omitempty"`
	Config       json.RawMessage `json:"config,omitempty"`
	ToolIDs      []string        `json:"toolIDs,omitempty"`
}
