// Package agentdeck provides a Go SDK for the AgentDeck platform API.
//
// The client covers the platform's configuration objects (agents, tools,
// organizations, projects, integrations) and the streaming chat endpoint.
//
// Example usage:
//
//	client := agentdeck.NewClient("https://api.agentdeck.dev",
//	    agentdeck.WithToken(token),
//	)
//
//	// Create an agent
//	agent, err := client.CreateAgent(ctx, &agentdeck.CreateAgentRequest{
//	    OrganizationID: org.ID,
//	    Name:           "Support Bot",
//	    Model:          "gpt-4o",
//	})
//
//	// Stream a chat message
//	client.StreamOrganizationMessage(ctx, org.ID, "Hello!", agentdeck.StreamHandlers{
//	    OnChunk:    func(ev agentdeck.StreamEvent) { fmt.Print(ev.Content) },
//	    OnError:    func(err error) { log.Println(err) },
//	    OnComplete: func(ev agentdeck.StreamEvent) { fmt.Println() },
//	})
package agentdeck

import "time"

// Now returns the current time as a Unix timestamp (float64).
func Now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// Timestamps holds creation and update times for a platform object.
type Timestamps struct {
	Created float64 `json:"created"`
	Updated float64 `json:"updated"`
}

// HealthResponse is the response from the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
