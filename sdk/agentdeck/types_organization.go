package agentdeck

// Organization is a tenant on the platform. Agents, projects and
// integrations all hang off an organization.
type Organization struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Slug string     `json:"slug"`
	Plan string     `json:"plan,omitempty"`
	Time Timestamps `json:"time"`
}

// CreateOrganizationRequest is the request body for creating an organization.
type CreateOrganizationRequest struct {
	Name string  `json:"name"`
	Slug *string `json:"slug,omitempty"`
}

// UpdateOrganizationRequest is the request body for updating an organization.
type UpdateOrganizationRequest struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// MessageRequest is the request body for the streaming chat endpoint.
type MessageRequest struct {
	Content string `json:"content"`
}
