package agentdeck

import "encoding/json"

// Tool is a callable capability an agent can be granted.
type Tool struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"` // JSON schema for the tool input
	Endpoint    string          `json:"endpoint,omitempty"`
	Time        Timestamps      `json:"time"`
}

// CreateToolRequest is the request body for creating a tool.
type CreateToolRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
	Endpoint    *string         `json:"endpoint,omitempty"`
}

// UpdateToolRequest is the request body for updating a tool.
type UpdateToolRequest struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
	Endpoint    *string         `json:"endpoint,omitempty"`
}
