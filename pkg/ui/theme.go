package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Styles
	Header lipgloss.Style

	// Card text is dark on every note color
	CardText lipgloss.Style
	CardID   lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
}

// DefaultTheme returns the standard Dracula-inspired theme (adaptive)
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"},
		Danger:    lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
	}

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true).
		Padding(0, 1)

	t.CardText = r.NewStyle().Foreground(lipgloss.Color("#1A1A1A"))
	t.CardID = r.NewStyle().Foreground(lipgloss.Color("#4A4A4A")).Bold(true)
	t.Error = r.NewStyle().Foreground(t.Danger).Bold(true)
	t.Status = r.NewStyle().Foreground(t.Subtext)

	return t
}

// CardColor returns the background for a ticket class: the note's palette
// color, or a muted surface when the class is not in the palette.
func (t Theme) CardColor(class string) lipgloss.TerminalColor {
	e, ok := palette.Lookup(palette.Name(class))
	if !ok {
		return ColorBgSubtle
	}
	return lipgloss.Color(e.Hex)
}

// SwatchColor returns the color used to draw a palette swatch.
func (t Theme) SwatchColor(n palette.Name) lipgloss.TerminalColor {
	e, ok := palette.Lookup(n)
	if !ok {
		return ColorBgSubtle
	}
	return ThemeFg(e.Hex)
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
