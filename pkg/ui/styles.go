package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// ColorBgSubtle is the card surface for colors outside the palette.
var ColorBgSubtle = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#363949"}

// ══════════════════════════════════════════════════════════════════════════════
// CARD STYLES
// ══════════════════════════════════════════════════════════════════════════════

var (
	// CardBorder frames an unfocused ticket card
	CardBorder = lipgloss.RoundedBorder()

	// FocusedCardBorder frames the card under the cursor
	FocusedCardBorder = lipgloss.ThickBorder()
)

// ══════════════════════════════════════════════════════════════════════════════
// BADGE RENDERING
// ══════════════════════════════════════════════════════════════════════════════

// RenderSwatch returns a colored swatch block for a palette color. The
// active swatch is bracketed.
func RenderSwatch(t Theme, n palette.Name, active bool) string {
	block := t.Renderer.NewStyle().
		Foreground(t.SwatchColor(n)).
		Render("███")
	if active {
		return t.Renderer.NewStyle().Foreground(t.Primary).Bold(true).Render("[") +
			block +
			t.Renderer.NewStyle().Foreground(t.Primary).Bold(true).Render("]")
	}
	return " " + block + " "
}

// RenderSwatchRow renders the whole palette with the swatch at active
// highlighted; active < 0 highlights nothing.
func RenderSwatchRow(t Theme, active int) string {
	names := palette.Names()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = RenderSwatch(t, n, i == active)
	}
	return strings.Join(parts, " ")
}

// RenderRemovalBadge renders the removal-mode indicator; red when on.
func RenderRemovalBadge(t Theme, on bool) string {
	if on {
		return t.Renderer.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(t.Danger).
			Bold(true).
			Padding(0, 1).
			Render("✕ REMOVE")
	}
	return t.Renderer.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1).
		Render("✕ remove")
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND SEPARATORS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(t Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Highlight).
		Render(strings.Repeat("─", width))
}
