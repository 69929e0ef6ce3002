// Package tui provides a scrollable Bubble Tea viewer for rendered mazes.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	headerHeight = 2 // title + blank line
	footerHeight = 2 // status + help
	minHeight    = 3
)

// KeyMap defines the key bindings for the viewer.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "scroll right"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Summary is the solve outcome shown in the status line.
type Summary struct {
	Name  string
	Found bool
	Cost  int64
	Tiles int
}

func (s Summary) String() string {
	if !s.Found {
		return "no path"
	}
	return fmt.Sprintf("cost %d · %d tiles", s.Cost, s.Tiles)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ViewerModel is the Bubble Tea model for browsing a rendered maze.
type ViewerModel struct {
	content  string
	summary  Summary
	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	width    int
	height   int
	quitting bool
}

// NewViewerModel creates a viewer for already rendered maze text.
func NewViewerModel(content string, summary Summary, width, height int) ViewerModel {
	m := ViewerModel{
		content: content,
		summary: summary,
		help:    help.New(),
		keys:    DefaultKeyMap(),
		width:   width,
		height:  height,
	}
	m.viewport = viewport.New(width, bodyHeight(height))
	m.viewport.SetHorizontalStep(4)
	m.viewport.SetContent(content)
	m.help.Width = width

	return m
}

func bodyHeight(total int) int {
	h := total - headerHeight - footerHeight
	if h < minHeight {
		return minHeight
	}
	return h
}

// Init initializes the viewer model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = bodyHeight(msg.Height)
		m.viewport.SetContent(m.content)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass everything else to the viewport for scrolling
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "MAZE"
	if m.summary.Name != "" {
		title = fmt.Sprintf("MAZE - %s", m.summary.Name)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	status := fmt.Sprintf("%s  %3.f%%", m.summary, m.viewport.ScrollPercent()*100)
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Quitting reports whether the user asked to leave.
func (m ViewerModel) Quitting() bool {
	return m.quitting
}
