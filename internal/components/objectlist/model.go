package objectlist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/agentdeck/agentdeck/internal/styles"
)

// Item is a single row in the list
type Item struct {
	ID     string
	Title  string
	Detail string
}

// Model represents a scrollable list with a detail line per item
type Model struct {
	title  string
	items  []Item
	cursor int
	width  int
	height int
}

// New creates a new object list
func New(title string, width, height int) Model {
	return Model{
		title:  title,
		width:  width,
		height: height,
	}
}

// Init initializes the list
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key navigation
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if len(m.items) > 0 {
				m.cursor = len(m.items) - 1
			}
		}
	}
	return m, nil
}

// View renders the list
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Header.Render(m.title))
	sb.WriteString("\n\n")

	if len(m.items) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(styles.Muted).
			PaddingLeft(1).
			Render("Nothing here yet.")
		sb.WriteString(empty)
		return sb.String()
	}

	// Two rendered lines per item plus the header
	visible := (m.height - 3) / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := start; i < end; i++ {
		item := m.items[i]
		title := truncate.StringWithTail(item.Title, uint(m.width-4), "…")
		if i == m.cursor {
			sb.WriteString(styles.ListItemSelected.Render("▸ " + title))
		} else {
			sb.WriteString(styles.ListItem.Render("  " + title))
		}
		sb.WriteString("\n")

		detail := truncate.StringWithTail(item.Detail, uint(m.width-6), "…")
		sb.WriteString(styles.ListDetail.Render(detail))
		sb.WriteString("\n")
	}

	return sb.String()
}

// SetItems replaces the list contents, clamping the cursor
func (m *Model) SetItems(items []Item) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the item under the cursor, if any
func (m Model) Selected() (Item, bool) {
	if len(m.items) == 0 {
		return Item{}, false
	}
	return m.items[m.cursor], true
}

// Len returns the number of items
func (m Model) Len() int {
	return len(m.items)
}

// SetSize updates the list dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
