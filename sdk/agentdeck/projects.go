package agentdeck

import (
	"context"
	"fmt"
	"net/http"
)

// ListProjects returns all projects, optionally filtered by organization.
func (c *Client) ListProjects(ctx context.Context, organizationID *string) ([]Project, error) {
	path := "/projects"
	if organizationID != nil {
		path = fmt.Sprintf("%s?organizationID=%s", path, *organizationID)
	}

	var result []Project
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	var result Project
	if err := c.doRequest(ctx, http.MethodPost, "/projects", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProject retrieves a project by ID.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	var result Project
	if err := c.doRequest(ctx, http.MethodGet, "/projects/"+projectID, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProject updates a project.
func (c *Client) UpdateProject(ctx context.Context, projectID string, req *UpdateProjectRequest) (*Project, error) {
	var result Project
	if err := c.doRequest(ctx, http.MethodPatch, "/projects/"+projectID, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	var result bool
	return c.doRequest(ctx, http.MethodDelete, "/projects/"+projectID, nil, &result)
}

// ListTasks returns the tasks of a project.
func (c *Client) ListTasks(ctx context.Context, projectID string) ([]Task, error) {
	var result []Task
	if err := c.doRequest(ctx, http.MethodGet, "/projects/"+projectID+"/tasks", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateTask creates a task in a project.
func (c *Client) CreateTask(ctx context.Context, projectID string, req *CreateTaskRequest) (*Task, error) {
	var result Task
	if err := c.doRequest(ctx, http.MethodPost, "/projects/"+projectID+"/tasks", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateTask updates a task.
func (c *Client) UpdateTask(ctx context.Context, projectID, taskID string, req *UpdateTaskRequest) (*Task, error) {
	var result Task
	path := fmt.Sprintf("/projects/%s/tasks/%s", projectID, taskID)
	if err := c.doRequest(ctx, http.MethodPatch, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	var result bool
	path := fmt.Sprintf("/projects/%s/tasks/%s", projectID, taskID)
	return c.doRequest(ctx, http.MethodDelete, path, nil, &result)
}
