package app

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentdeck/agentdeck/internal/components/chat"
	"github.com/agentdeck/agentdeck/internal/components/input"
	"github.com/agentdeck/agentdeck/internal/components/objectlist"
	"github.com/agentdeck/agentdeck/sdk/agentdeck"
)

// State represents the application state
type State int

const (
	StateIdle State = iota
	StateStreaming
	StateError
)

// Tab identifies the active dashboard view
type Tab int

const (
	TabAgents Tab = iota
	TabProjects
	TabChat
)

var tabNames = []string{"Agents", "Projects", "Chat"}

// SharedState holds state that needs to be shared between model copies
type SharedState struct {
	mu      sync.Mutex
	program *tea.Program
}

// SetProgram sets the program reference
func (s *SharedState) SetProgram(p *tea.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = p
}

// GetProgram gets the program reference
func (s *SharedState) GetProgram() *tea.Program {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.program
}

// Model is the main application model
type Model struct {
	tab      Tab
	agents   objectlist.Model
	projects objectlist.Model
	chat     chat.Model
	input    input.Model
	client   *agentdeck.Client
	orgID    string
	shared   *SharedState
	state    State
	width    int
	height   int
	err      error
	ctx      context.Context
	cancel   context.CancelFunc
	ready    bool
}

// New creates a new application model
func New(client *agentdeck.Client, orgID string) Model {
	return Model{
		tab:      TabAgents,
		agents:   objectlist.New("Agents", 80, 20),
		projects: objectlist.New("Projects", 80, 20),
		chat:     chat.New(80, 20),
		input:    input.New(80),
		client:   client,
		orgID:    orgID,
		shared:   &SharedState{},
		state:    StateIdle,
	}
}

// SetProgram sets the tea.Program reference for stream callbacks
func (m *Model) SetProgram(p *tea.Program) {
	m.shared.SetProgram(p)
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Init(),
		m.chat.Init(),
		m.loadAgents(),
		m.loadProjects(),
	)
}
