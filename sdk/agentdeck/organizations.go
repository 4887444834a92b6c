package agentdeck

import (
	"context"
	"net/http"
)

// ListOrganizations returns the organizations the caller belongs to.
func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	var result []Organization
	if err := c.doRequest(ctx, http.MethodGet, "/organizations", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateOrganization creates a new organization.
func (c *Client) CreateOrganization(ctx context.Context, req *CreateOrganizationRequest) (*Organization, error) {
	var result Organization
	if err := c.doRequest(ctx, http.MethodPost, "/organizations", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrganization retrieves an organization by ID.
func (c *Client) GetOrganization(ctx context.Context, orgID string) (*Organization, error) {
	var result Organization
	if err := c.doRequest(ctx, http.MethodGet, "/organizations/"+orgID, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateOrganization updates an organization.
func (c *Client) UpdateOrganization(ctx context.Context, orgID string, req *UpdateOrganizationRequest) (*Organization, error) {
	var result Organization
	if err := c.doRequest(ctx, http.MethodPatch, "/organizations/"+orgID, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteOrganization deletes an organization.
func (c *Client) DeleteOrganization(ctx context.Context, orgID string) error {
	var result bool
	return c.doRequest(ctx, http.MethodDelete, "/organizations/"+orgID, nil, &result)
}

// StreamOrganizationMessage posts a chat message to the organization's
// assistant and decodes the event stream of the response. It blocks until
// the stream ends; every outcome is delivered through h. OnChunk fires for
// each incremental event, then exactly one of OnError or OnComplete fires.
// A stream that ends without a terminal event ends quietly with neither.
// Cancel ctx to abort the stream; an aborted stream produces no further
// callbacks.
func (c *Client) StreamOrganizationMessage(ctx context.Context, orgID, content string, h StreamHandlers) {
	path := "/organizations/" + orgID + "/messages"
	c.doStreamRequest(ctx, http.MethodPost, path, &MessageRequest{Content: content}, h)
}
