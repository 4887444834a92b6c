package agentdeck

import (
	"context"
	"net/http"
)

// ListIntegrations returns the integrations of an organization.
func (c *Client) ListIntegrations(ctx context.Context, orgID string) ([]Integration, error) {
	var result []Integration
	if err := c.doRequest(ctx, http.MethodGet, "/organizations/"+orgID+"/integrations", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetIntegration retrieves an integration by ID.
func (c *Client) GetIntegration(ctx context.Context, orgID, integrationID string) (*Integration, error) {
	var result Integration
	path := "/organizations/" + orgID + "/integrations/" + integrationID
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ConnectIntegration connects a third-party provider to an organization.
func (c *Client) ConnectIntegration(ctx context.Context, orgID string, req *ConnectIntegrationRequest) (*Integration, error) {
	var result Integration
	path := "/organizations/" + orgID + "/integrations"
	if err := c.doRequest(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DisconnectIntegration disconnects an integration.
func (c *Client) DisconnectIntegration(ctx context.Context, orgID, integrationID string) error {
	var result bool
	path := "/organizations/" + orgID + "/integrations/" + integrationID
	return c.doRequest(ctx, http.MethodDelete, path, nil, &result)
}
