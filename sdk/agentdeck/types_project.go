package agentdeck

// Project groups related work inside an organization.
type Project struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organizationID"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status"` // "active", "paused", "archived"
	Time           Timestamps `json:"time"`
}

// Task is a unit of work inside a project.
type Task struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"projectID"`
	Title      string     `json:"title"`
	Status     string     `json:"status"` // "todo", "in_progress", "done"
	AssigneeID *string    `json:"assigneeID,omitempty"`
	Time       Timestamps `json:"time"`
}

// CreateProjectRequest is the request body for creating a project.
type CreateProjectRequest struct {
	OrganizationID string  `json:"organizationID"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
}

// UpdateProjectRequest is the request body for updating a project.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// CreateTaskRequest is the request body for creating a task.
type CreateTaskRequest struct {
	Title      string  `json:"title"`
	AssigneeID *string `json:"assigneeID,omitempty"`
}

// UpdateTaskRequest is the request body for updating a task.
type UpdateTaskRequest struct {
	Title      *string `json:"title,omitempty"`
	Status     *string `json:"status,omitempty"`
	AssigneeID *string `json:"assigneeID,omitempty"`
}
