package agentdeck

import (
	"context"
	"fmt"
	"net/http"
)

// ListAgents returns all agents visible to the caller, optionally filtered
// by organization.
func (c *Client) ListAgents(ctx context.Context, organizationID *string) ([]Agent, error) {
	path := "/agents"
	if organizationID != nil {
		path = fmt.Sprintf("%s?organizationID=%s", path, *organizationID)
	}

	var result []Agent
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateAgent creates a new agent.
func (c *Client) CreateAgent(ctx context.Context, req *CreateAgentRequest) (*Agent, error) {
	var result Agent
	if err := c.doRequest(ctx, http.MethodPost, "/agents", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAgent retrieves an agent by ID.
func (c *Client) GetAgent(ctx context.Context, agentID string) (*Agent, error) {
	var result Agent
	if err := c.doRequest(ctx, http.MethodGet, "/agents/"+agentID, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateAgent updates an agent.
func (c *Client) UpdateAgent(ctx context.Context, agentID string, req *UpdateAgentRequest) (*Agent, error) {
	var result Agent
	if err := c.doRequest(ctx, http.MethodPatch, "/agents/"+agentID, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteAgent deletes an agent.
func (c *Client) DeleteAgent(ctx context.Context, agentID string) error {
	var result bool
	return c.doRequest(ctx, http.MethodDelete, "/agents/"+agentID, nil, &result)
}
