package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Colors
	colorDir  = lipgloss.Color("12") // Bright blue
	colorFile = lipgloss.Color("2")  // Green
)

// Styles holds the lipgloss styles used for text listings.
type Styles struct {
	Dir  lipgloss.Style
	File lipgloss.Style
}

// NewStyles creates styles bound to r so that the renderer's colour
// profile decides whether escape codes are emitted.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Dir: r.NewStyle().
			Foreground(colorDir).
			Bold(true),
		File: r.NewStyle().
			Foreground(colorFile),
	}
}

// PlainStyles returns styles that never emit escape codes.
func PlainStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyles(r)
}

// Icon picks the glyph shown before an entry. name is the entry's base name.
func Icon(isDir bool, name string) string {
	if isDir {
		return "📁"
	}
	switch {
	case strings.HasSuffix(name, ".rs"):
		return "🦀"
	case strings.HasSuffix(name, ".md"):
		return "📄"
	case strings.HasSuffix(name, ".toml"):
		return "⚙️"
	default:
		return "📦"
	}
}
