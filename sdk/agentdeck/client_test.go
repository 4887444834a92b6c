package agentdeck_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/agentdeck/agentdeck/sdk/agentdeck"
)

const testToken = "test-token"

// testServer is a mock of the AgentDeck platform API for testing.
type testServer struct {
	server        *httptest.Server
	mu            sync.RWMutex
	agents        map[string]*agentdeck.Agent
	tools         map[string]*agentdeck.Tool
	organizations map[string]*agentdeck.Organization
	projects      map[string]*agentdeck.Project
	tasks         map[string]map[string]*agentdeck.Task // projectID -> taskID -> task
	integrations  map[string]*agentdeck.Integration
}

func newTestServer() *testServer {
	ts := &testServer{
		agents:        make(map[string]*agentdeck.Agent),
		tools:         make(map[string]*agentdeck.Tool),
		organizations: make(map[string]*agentdeck.Organization),
		projects:      make(map[string]*agentdeck.Project),
		tasks:         make(map[string]map[string]*agentdeck.Task),
		integrations:  make(map[string]*agentdeck.Integration),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", ts.handleHealth)
	mux.HandleFunc("/agents", ts.requireAuth(ts.handleAgents))
	mux.HandleFunc("/agents/", ts.requireAuth(ts.handleAgent))
	mux.HandleFunc("/tools", ts.requireAuth(ts.handleTools))
	mux.HandleFunc("/tools/", ts.requireAuth(ts.handleTool))
	mux.HandleFunc("/organizations", ts.requireAuth(ts.handleOrganizations))
	mux.HandleFunc("/organizations/", ts.requireAuth(ts.handleOrganization))
	mux.HandleFunc("/projects", ts.requireAuth(ts.handleProjects))
	mux.HandleFunc("/projects/", ts.requireAuth(ts.handleProject))

	ts.server = httptest.NewServer(mux)
	return ts
}

func (ts *testServer) Close() {
	ts.server.Close()
}

func (ts *testServer) URL() string {
	return ts.server.URL
}

func (ts *testServer) client() *agentdeck.Client {
	return agentdeck.NewClient(ts.URL(), agentdeck.WithToken(testToken))
}

func (ts *testServer) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next(w, r)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (ts *testServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, agentdeck.HealthResponse{Status: "ok", Version: "test"})
}

// --- agents ---

func (ts *testServer) handleAgents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ts.mu.RLock()
		defer ts.mu.RUnlock()

		filter := r.URL.Query().Get("organizationID")
		agents := make([]agentdeck.Agent, 0, len(ts.agents))
		for _, a := range ts.agents {
			if filter != "" && a.OrganizationID != filter {
				continue
			}
			agents = append(agents, *a)
		}
		writeJSON(w, agents)

	case http.MethodPost:
		var req agentdeck.CreateAgentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		ts.mu.Lock()
		defer ts.mu.Unlock()

		now := agentdeck.Now()
		agent := &agentdeck.Agent{
			ID:             fmt.Sprintf("agent_%d", len(ts.agents)+1),
			OrganizationID: req.OrganizationID,
			Name:           req.Name,
			Model:          req.Model,
			Config:         req.Config,
			ToolIDs:        req.ToolIDs,
			Time:           agentdeck.Timestamps{Created: now, Updated: now},
		}
		if req.Description != nil {
			agent.Description = *req.Description
		}
		if req.SystemPrompt != nil {
			agent.SystemPrompt = *req.SystemPrompt
		}
		ts.agents[agent.ID] = agent
		writeJSON(w, agent)

	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (ts *testServer) handleAgent(w http.ResponseWriter, r *http.Request) {
	agentID := strings.TrimPrefix(r.URL.Path, "/agents/")

	ts.mu.Lock()
	defer ts.mu.Unlock()

	agent, ok := ts.agents[agentID]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Agent not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, agent)
	case http.MethodPatch:
		var req agentdeck.UpdateAgentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Name != nil {
			agent.Name = *req.Name
		}
		if req.Model != nil {
			agent.Model = *req.Model
		}
		if req.Description != nil {
			agent.Description = *req.Description
		}
		if req.SystemPrompt != nil {
			agent.SystemPrompt = *req.SystemPrompt
		}
		if req.Config != nil {
			agent.Config = req.Config
		}
		if req.ToolIDs != nil {
			agent.ToolIDs = req.ToolIDs
		}
		agent.Time.Updated = agentdeck.Now()
		writeJSON(w, agent)
	case http.MethodDelete:
		delete(ts.agents, agentID)
		writeJSON(w, true)
	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// --- tools ---

func (ts *testServer) handleTools(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ts.mu.RLock()
		defer ts.mu.RUnlock()

		tools := make([]agentdeck.Tool, 0, len(ts.tools))
		for _, t := range ts.tools {
			tools = append(tools, *t)
		}
		writeJSON(w, tools)

	case http.MethodPost:
		var req agentdeck.CreateToolRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		ts.mu.Lock()
		defer ts.mu.Unlock()

		now := agentdeck.Now()
		tool := &agentdeck.Tool{
			ID:         fmt.Sprintf("tool_%d", len(ts.tools)+1),
			Name:       req.Name,
			Parameters: req.Parameters,
			Time:       agentdeck.Timestamps{Created: now, Updated: now},
		}
		if req.Description != nil {
			tool.Description = *req.Description
		}
		if req.Endpoint != nil {
			tool.Endpoint = *req.Endpoint
		}
		ts.tools[tool.ID] = tool
		writeJSON(w, tool)

	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (ts *testServer) handleTool(w http.ResponseWriter, r *http.Request) {
	toolID := strings.TrimPrefix(r.URL.Path, "/tools/")

	ts.mu.Lock()
	defer ts.mu.Unlock()

	tool, ok := ts.tools[toolID]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Tool not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, tool)
	case http.MethodPatch:
		var req agentdeck.UpdateToolRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Name != nil {
			tool.Name = *req.Name
		}
		if req.Description != nil {
			tool.Description = *req.Description
		}
		if req.Parameters != nil {
			tool.Parameters = req.Parameters
		}
		if req.Endpoint != nil {
			tool.Endpoint = *req.Endpoint
		}
		tool.Time.Updated = agentdeck.Now()
		writeJSON(w, tool)
	case http.MethodDelete:
		delete(ts.tools, toolID)
		writeJSON(w, true)
	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// --- organizations, integrations, chat ---

func (ts *testServer) handleOrganizations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ts.mu.RLock()
		defer ts.mu.RUnlock()

		orgs := make([]agentdeck.Organization, 0, len(ts.organizations))
		for _, o := range ts.organizations {
			orgs = append(orgs, *o)
		}
		writeJSON(w, orgs)

	case http.MethodPost:
		var req agentdeck.CreateOrganizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		ts.mu.Lock()
		defer ts.mu.Unlock()

		now := agentdeck.Now()
		org := &agentdeck.Organization{
			ID:   fmt.Sprintf("org_%d", len(ts.organizations)+1),
			Name: req.Name,
			Slug: strings.ToLower(strings.ReplaceAll(req.Name, " ", "-")),
			Time: agentdeck.Timestamps{Created: now, Updated: now},
		}
		if req.Slug != nil {
			org.Slug = *req.Slug
		}
		ts.organizations[org.ID] = org
		writeJSON(w, org)

	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (ts *testServer) handleOrganization(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/organizations/")
	parts := strings.Split(path, "/")
	orgID := parts[0]

	if len(parts) >= 2 {
		switch parts[1] {
		case "messages":
			ts.handleMessages(w, r, orgID)
		case "integrations":
			ts.handleIntegrations(w, r, orgID, parts[2:])
		default:
			writeDetail(w, http.StatusNotFound, "Not found")
		}
		return
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	org, ok := ts.organizations[orgID]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Organization not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, org)
	case http.MethodPatch:
		var req agentdeck.UpdateOrganizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Name != nil {
			org.Name = *req.Name
		}
		if req.Slug != nil {
			org.Slug = *req.Slug
		}
		org.Time.Updated = agentdeck.Now()
		writeJSON(w, org)
	case http.MethodDelete:
		delete(ts.organizations, orgID)
		writeJSON(w, true)
	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (ts *testServer) handleIntegrations(w http.ResponseWriter, r *http.Request, orgID string, rest []string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if len(rest) > 0 && rest[0] != "" {
		integration, ok := ts.integrations[rest[0]]
		if !ok || integration.OrganizationID != orgID {
			writeDetail(w, http.StatusNotFound, "Integration not found")
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, integration)
		case http.MethodDelete:
			integration.Status = "disconnected"
			integration.ConnectedAt = nil
			writeJSON(w, true)
		default:
			writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		integrations := make([]agentdeck.Integration, 0, len(ts.integrations))
		for _, i := range ts.integrations {
			if i.OrganizationID == orgID {
				integrations = append(integrations, *i)
			}
		}
		writeJSON(w, integrations)

	case http.MethodPost:
		var req agentdeck.ConnectIntegrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		now := agentdeck.Now()
		integration := &agentdeck.Integration{
			ID:             fmt.Sprintf("int_%d", len(ts.integrations)+1),
			OrganizationID: orgID,
			Provider:       req.Provider,
			Status:         "connected",
			Settings:       req.Settings,
			ConnectedAt:    &now,
		}
		ts.integrations[integration.ID] = integration
		writeJSON(w, integration)

	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleMessages drives the streaming scenarios. The message content picks
// the server behavior so tests can exercise each terminal path.
func (ts *testServer) handleMessages(w http.ResponseWriter, r *http.Request, orgID string) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req agentdeck.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Content == "too many" {
		writeDetail(w, http.StatusTooManyRequests, "Too many requests")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeDetail(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	send := func(ev agentdeck.StreamEvent) {
		payload, _ := json.Marshal(ev)
		fmt.Fprintf(w, "data: %s\n", payload)
		flusher.Flush()
	}

	switch req.Content {
	case "fail":
		send(agentdeck.StreamEvent{Type: "error", Content: "rate limited"})

	case "garbage then complete":
		fmt.Fprint(w, "data: {not json at all\n")
		flusher.Flush()
		send(agentdeck.StreamEvent{Type: "complete", Content: "done"})

	case "truncate":
		send(agentdeck.StreamEvent{Type: "token", Content: "partial"})
		// No terminal event; the connection just closes.

	case "hang":
		send(agentdeck.StreamEvent{Type: "token", Content: "first"})
		<-r.Context().Done()

	default:
		for _, tok := range []string{"Hel", "lo ", "世界", "!"} {
			send(agentdeck.StreamEvent{Type: "token", Content: tok})
			time.Sleep(time.Millisecond)
		}
		send(agentdeck.StreamEvent{Type: "complete", Content: "done"})
	}
}

// --- projects and tasks ---

func (ts *testServer) handleProjects(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ts.mu.RLock()
		defer ts.mu.RUnlock()

		filter := r.URL.Query().Get("organizationID")
		projects := make([]agentdeck.Project, 0, len(ts.projects))
		for _, p := range ts.projects {
			if filter != "" && p.OrganizationID != filter {
				continue
			}
			projects = append(projects, *p)
		}
		writeJSON(w, projects)

	case http.MethodPost:
		var req agentdeck.CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		ts.mu.Lock()
		defer ts.mu.Unlock()

		now := agentdeck.Now()
		project := &agentdeck.Project{
			ID:             fmt.Sprintf("proj_%d", len(ts.projects)+1),
			OrganizationID: req.OrganizationID,
			Name:           req.Name,
			Status:         "active",
			Time:           agentdeck.Timestamps{Created: now, Updated: now},
		}
		if req.Description != nil {
			project.Description = *req.Description
		}
		ts.projects[project.ID] = project
		ts.tasks[project.ID] = make(map[string]*agentdeck.Task)
		writeJSON(w, project)

	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (ts *testServer) handleProject(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/projects/")
	parts := strings.Split(path, "/")
	projectID := parts[0]

	ts.mu.Lock()
	defer ts.mu.Unlock()

	project, ok := ts.projects[projectID]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Project not found")
		return
	}

	if len(parts) >= 2 && parts[1] == "tasks" {
		ts.handleTasks(w, r, projectID, parts[2:])
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, project)
	case http.MethodPatch:
		var req agentdeck.UpdateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Name != nil {
			project.Name = *req.Name
		}
		if req.Description != nil {
			project.Description = *req.Description
		}
		if req.Status != nil {
			project.Status = *req.Status
		}
		project.Time.Updated = agentdeck.Now()
		writeJSON(w, project)
	case http.MethodDelete:
		delete(ts.projects, projectID)
		delete(ts.tasks, projectID)
		writeJSON(w, true)
	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (ts *testServer) handleTasks(w http.ResponseWriter, r *http.Request, projectID string, rest []string) {
	tasks := ts.tasks[projectID]

	if len(rest) > 0 && rest[0] != "" {
		task, ok := tasks[rest[0]]
		if !ok {
			writeDetail(w, http.StatusNotFound, "Task not found")
			return
		}
		switch r.Method {
		case http.MethodPatch:
			var req agentdeck.UpdateTaskRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeDetail(w, http.StatusBadRequest, err.Error())
				return
			}
			if req.Title != nil {
				task.Title = *req.Title
			}
			if req.Status != nil {
				task.Status = *req.Status
			}
			if req.AssigneeID != nil {
				task.AssigneeID = req.AssigneeID
			}
			task.Time.Updated = agentdeck.Now()
			writeJSON(w, task)
		case http.MethodDelete:
			delete(tasks, rest[0])
			writeJSON(w, true)
		default:
			writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		list := make([]agentdeck.Task, 0, len(tasks))
		for _, t := range tasks {
			list = append(list, *t)
		}
		writeJSON(w, list)

	case http.MethodPost:
		var req agentdeck.CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		now := agentdeck.Now()
		task := &agentdeck.Task{
			ID:         fmt.Sprintf("task_%d", len(tasks)+1),
			ProjectID:  projectID,
			Title:      req.Title,
			Status:     "todo",
			AssigneeID: req.AssigneeID,
			Time:       agentdeck.Timestamps{Created: now, Updated: now},
		}
		tasks[task.ID] = task
		writeJSON(w, task)

	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
