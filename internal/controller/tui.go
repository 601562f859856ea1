package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// footerHeight is the number of lines reserved below the viewport.
const footerHeight = 2

// Pager shows long reports in a scrollable viewport when writing to a terminal.
type Pager struct {
	output io.Writer
}

// NewPager creates a Pager writing to output.
func NewPager(output io.Writer) *Pager {
	return &Pager{output: output}
}

// Show displays content. Content that fits on screen, or output that is not
// a terminal, is printed directly.
func (p *Pager) Show(content string) error {
	model := newPagerModel(content, 0, 0)

	if f, ok := p.output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = newPagerModel(content, width, height)
		}
	}

	if !model.needsPagination() {
		_, err := io.WriteString(p.output, content)
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}

	return nil
}

// pagerModel is the Bubble Tea model behind Pager.
type pagerModel struct {
	viewport viewport.Model
	lines    int
	height   int
	quitting bool
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-footerHeight, 1))
	vp.SetContent(content)

	return pagerModel{
		viewport: vp,
		lines:    strings.Count(content, "\n") + 1,
		height:   height,
	}
}

// needsPagination returns true if the content is taller than the screen.
func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && pm.lines > pm.height
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-footerHeight, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := fmt.Sprintf("  %3.f%% | ↑/k: up | ↓/j: down | pgup/pgdown: page | q: quit", pm.viewport.ScrollPercent()*100)

	return pm.viewport.View() + "\n\n" + footer
}
