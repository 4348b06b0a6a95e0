// Package tui contains the terminal UI models.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// PreviewData holds the rendered document shown by the pager.
type PreviewData struct {
	Title       string
	Content     string
	Diagnostics []string
}

type previewModel struct {
	viewport viewport.Model
	data     PreviewData
	ready    bool
	width    int
	height   int
}

// InitPreviewModel creates a pager over a rendered document.
func InitPreviewModel(data PreviewData) previewModel {
	vp := viewport.New(100, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1)
	vp.SetContent(data.Content)

	return previewModel{
		viewport: vp,
		data:     data,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6 - len(m.data.Diagnostics)
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "up", "k", "down", "j", "pgup", "pgdown", " ":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	title := m.data.Title
	if title == "" {
		title = "Preview"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if len(m.data.Diagnostics) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("Diagnostics: %d", len(m.data.Diagnostics))))
		b.WriteString("\n")
		for _, d := range m.data.Diagnostics {
			style := warningStyle
			if strings.HasPrefix(d, "error") || strings.HasPrefix(d, "fatal") {
				style = errorStyle
			}
			b.WriteString(fmt.Sprintf("  %s\n", style.Render(d)))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • g/G top/bottom • q/esc quit"))
	b.WriteString("\n")

	return b.String()
}
