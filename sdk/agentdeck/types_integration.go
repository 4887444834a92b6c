package agentdeck

import "encoding/json"

// Integration is a third-party service connection for an organization.
type Integration struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationID"`
	Provider       string          `json:"provider"` // "slack", "github", ...
	Status         string          `json:"status"`   // "connected", "disconnected"
	Settings       json.RawMessage `json:"settings,omitempty"`
	ConnectedAt    *float64        `json:"connectedAt,omitempty"`
}

// ConnectIntegrationRequest is the request body for connecting an integration.
type ConnectIntegrationRequest struct {
	Provider string          `json:"provider"`
	Settings json.RawMessage `json:"settings,omitempty"`
}
