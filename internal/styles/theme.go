package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary     = lipgloss.Color("#7C3AED")
	Secondary   = lipgloss.Color("#10B981")
	Error       = lipgloss.Color("#EF4444")
	Muted       = lipgloss.Color("#6B7280")
	White       = lipgloss.Color("#FFFFFF")
	LightGray   = lipgloss.Color("#E5E7EB")
	SelectionBg = lipgloss.Color("#1E3A5F")

	// Message Styles
	UserMessage = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(White).
			Bold(true)

	UserLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	AssistantMessage = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(LightGray)

	AssistantLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// List Styles
	ListItem = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(LightGray)

	ListItemSelected = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(White).
				Background(SelectionBg).
				Bold(true)

	ListDetail = lipgloss.NewStyle().
			Foreground(Muted).
			PaddingLeft(3)

	// Tab Styles
	TabActive = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Input Styles
	InputBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Status Bar Styles
	StatusBar = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	StatusBarStreaming = lipgloss.NewStyle().
				Foreground(Primary).
				Padding(0, 1)

	StatusBarError = lipgloss.NewStyle().
			Foreground(Error).
			Padding(0, 1)

	// Header
	Header = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Padding(0, 1)

	// Cursor for streaming
	StreamingCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)
