package controller

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	m "gooze.dev/pkg/mutareport/internal/model"
)

// Tag is a semantic colour tag.
type Tag int

// Available tags.
const (
	TagNeutral Tag = iota
	TagGood
	TagWarn
	TagDanger
)

// Palette wraps text in colour markup. Each palette owns its renderer, so
// palettes never share or mutate process-wide colour state.
type Palette struct {
	styles map[Tag]lipgloss.Style
}

// NewPalette creates a palette rendering with the given colour profile.
func NewPalette(profile termenv.Profile) *Palette {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(profile)

	base := renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return &Palette{
		styles: map[Tag]lipgloss.Style{
			TagGood:    base.Foreground(lipgloss.Color("2")), // Green
			TagWarn:    base.Foreground(lipgloss.Color("3")), // Yellow
			TagDanger:  base.Foreground(lipgloss.Color("1")), // Red
			TagNeutral: base.Foreground(lipgloss.Color("8")), // Bright black
		},
	}
}

// NewPaletteFor detects the colour profile supported by w.
func NewPaletteFor(w io.Writer) *Palette {
	return NewPalette(termenv.NewOutput(w).EnvColorProfile())
}

// PlainPalette returns a palette that leaves text untouched.
func PlainPalette() *Palette {
	return NewPalette(termenv.Ascii)
}

// Wrap returns text wrapped in the markup for tag. The visible width of the
// result equals the width of text, so callers pad before wrapping.
func (p *Palette) Wrap(text string, tag Tag) string {
	if p == nil || text == "" {
		return text
	}

	style, ok := p.styles[tag]
	if !ok {
		return text
	}

	return style.Render(text)
}

// HealthTag maps a health verdict to its colour tag.
func HealthTag(health m.Health) Tag {
	switch health {
	case m.Good:
		return TagGood
	case m.Warning:
		return TagWarn
	case m.Danger:
		return TagDanger
	default:
		return TagNeutral
	}
}

// StatusTag maps a mutant status to its colour tag.
func StatusTag(status m.MutantStatus) Tag {
	switch status {
	case m.Killed, m.Timeout:
		return TagGood
	case m.Survived:
		return TagDanger
	default:
		return TagNeutral
	}
}
