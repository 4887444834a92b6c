package agentdeck

import (
	"context"
	"net/http"
)

// ListTools returns all tools.
func (c *Client) ListTools(ctx context.Context) ([]Tool, error) {
	var result []Tool
	if err := c.doRequest(ctx, http.MethodGet, "/tools", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateTool creates a new tool.
func (c *Client) CreateTool(ctx context.Context, req *CreateToolRequest) (*Tool, error) {
	var result Tool
	if err := c.doRequest(ctx, http.MethodPost, "/tools", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTool retrieves a tool by ID.
func (c *Client) GetTool(ctx context.Context, toolID string) (*Tool, error) {
	var result Tool
	if err := c.doRequest(ctx, http.MethodGet, "/tools/"+toolID, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateTool updates a tool.
func (c *Client) UpdateTool(ctx context.Context, toolID string, req *UpdateToolRequest) (*Tool, error) {
	var result Tool
	if err := c.doRequest(ctx, http.MethodPatch, "/tools/"+toolID, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteTool deletes a tool.
func (c *Client) DeleteTool(ctx context.Context, toolID string) error {
	var result bool
	return c.doRequest(ctx, http.MethodDelete, "/tools/"+toolID, nil, &result)
}
