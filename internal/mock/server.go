// Package mock provides a local development server that speaks the
// AgentDeck API, useful for working on the dashboard without a backend.
package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Server struct {
	port int
}

func NewServer(port int) *Server {
	return &Server{port: port}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/agents", s.agentsHandler)
	mux.HandleFunc("/projects", s.projectsHandler)
	mux.HandleFunc("/organizations", s.organizationsHandler)
	mux.HandleFunc("/organizations/", s.organizationHandler)

	addr := fmt.Sprintf(":%d", s.port)
	fmt.Printf("Mock server starting on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"status": "ok"})
}

func (s *Server) agentsHandler(w http.ResponseWriter, r *http.Request) {
	now := float64(time.Now().Unix())
	stamps := map[string]any{"created": now, "updated": now}
	writeJSON(w, []map[string]any{
		{
			"id":             "agent-support",
			"organizationID": "org-demo",
			"name":           "Support Agent",
			"description":    "Answers customer questions",
			"model":          "gpt-4o",
			"time":           stamps,
		},
		{
			"id":             "agent-research",
			"organizationID": "org-demo",
			"name":           "Research Agent",
			"description":    "Summarizes documents and reports",
			"model":          "claude-3-5-sonnet",
			"time":           stamps,
		},
	})
}

func (s *Server) projectsHandler(w http.ResponseWriter, r *http.Request) {
	now := float64(time.Now().Unix())
	stamps := map[string]any{"created": now, "updated": now}
	writeJSON(w, []map[string]any{
		{
			"id":             "proj-onboarding",
			"organizationID": "org-demo",
			"name":           "Customer Onboarding",
			"description":    "Automate the onboarding flow",
			"status":         "active",
			"time":           stamps,
		},
		{
			"id":             "proj-kb",
			"organizationID": "org-demo",
			"name":           "Knowledge Base",
			"description":    "Index internal docs for retrieval",
			"status":         "archived",
			"time":           stamps,
		},
	})
}

func (s *Server) organizationsHandler(w http.ResponseWriter, r *http.Request) {
	now := float64(time.Now().Unix())
	writeJSON(w, []map[string]any{
		{
			"id":   "org-demo",
			"name": "Demo Organization",
			"time": map[string]any{"created": now, "updated": now},
		},
	})
}

// organizationHandler routes /organizations/{id}/messages to the stream.
func (s *Server) organizationHandler(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, "/messages") {
		http.NotFound(w, r)
		return
	}
	s.messagesHandler(w, r)
}

func (s *Server) messagesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	response := mockResponse(req.Content)
	streamTokens(r, w, flusher, response)

	sendEvent(w, flusher, "complete", uuid.NewString())
}

func mockResponse(content string) string {
	lower := strings.ToLower(content)

	if strings.Contains(lower, "hello") || strings.Contains(lower, "hi") {
		return "Hello! I'm your organization's assistant. I can:\n\n- Answer questions about your agents\n- Summarize project status\n- Help draft agent system prompts\n\nWhat would you like to know?"
	}

	if strings.Contains(lower, "agent") {
		return "Your organization has two agents configured:\n\n1. **Support Agent** — answers customer questions using `gpt-4o`\n2. **Research Agent** — summarizes documents using `claude-3-5-sonnet`\n\nWould you like to create another one?"
	}

	if strings.Contains(lower, "project") {
		return "Here's your project status:\n\n- **Customer Onboarding** is active with 3 open tasks\n- **Knowledge Base** is completed\n\nAnything you'd like me to dig into?"
	}

	return "I understand your request. As your organization's assistant I can answer questions about your agents, projects, tasks, and integrations. What would you like me to look at?"
}

func streamTokens(r *http.Request, w http.ResponseWriter, flusher http.Flusher, response string) {
	// Batch a few runes per event for a realistic streaming feel
	batchSize := 3
	runes := []rune(response)

	for i := 0; i < len(runes); i += batchSize {
		select {
		case <-r.Context().Done():
			return
		default:
		}

		end := i + batchSize
		if end > len(runes) {
			end = len(runes)
		}

		chunk := string(runes[i:end])
		sendEvent(w, flusher, "token", chunk)

		delay := 15 * time.Millisecond
		if strings.ContainsAny(chunk, ".!?\n") {
			delay = 50 * time.Millisecond
		}
		time.Sleep(delay)
	}
}

func sendEvent(w http.ResponseWriter, flusher http.Flusher, eventType, content string) {
	payload, _ := json.Marshal(map[string]string{
		"type":    eventType,
		"content": content,
	})
	fmt.Fprintf(w, "data: %s\n", payload)
	flusher.Flush()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
