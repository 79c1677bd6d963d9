package ui

import (
	"html"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/mattn/go-runewidth"
	"github.com/microcosm-cc/bluemonday"
	"github.com/muesli/reflow/wordwrap"
)

var (
	stripPolicy = bluemonday.StrictPolicy()
	mdConverter = converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
)

// truncateRunesHelper truncates a string to max visual width (cells), adding suffix if needed.
// Uses go-runewidth to handle wide characters correctly.
func truncateRunesHelper(s string, maxWidth int, suffix string) string {
	if maxWidth <= 0 {
		return ""
	}

	width := runewidth.StringWidth(s)
	if width <= maxWidth {
		return s
	}

	suffixWidth := runewidth.StringWidth(suffix)
	if suffixWidth > maxWidth {
		// Even suffix is too wide, truncate suffix
		return runewidth.Truncate(suffix, maxWidth, "")
	}

	targetWidth := maxWidth - suffixWidth
	return runewidth.Truncate(s, targetWidth, "") + suffix
}

// truncate truncates string s to maxWidth cells
func truncate(s string, maxWidth int) string {
	return truncateRunesHelper(s, maxWidth, "…")
}

// padRight pads string s with spaces on the right to width cells
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// plainText strips markup from a ticket description for card display.
// Block-level tags become line breaks, entities are decoded and runs of
// blank lines are collapsed.
func plainText(description string) string {
	s := description
	for _, tag := range []string{"<br>", "<br/>", "<br />", "</div>", "</p>", "</li>"} {
		s = strings.ReplaceAll(s, tag, tag+"\n")
	}
	s = html.UnescapeString(stripPolicy.Sanitize(s))

	lines := strings.Split(s, "\n")
	out := lines[:0]
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// toMarkdown converts a description fragment to markdown for the detail
// view. Plain text passes through unchanged.
func toMarkdown(description string) string {
	if !strings.Contains(description, "<") {
		return description
	}
	md, err := mdConverter.ConvertString(description)
	if err != nil {
		return plainText(description)
	}
	return md
}

// wrapLines wraps text to width cells and returns at most maxLines lines,
// marking a cut with an ellipsis on the last line.
func wrapLines(text string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		wrapped := wordwrap.String(para, width)
		lines = append(lines, strings.Split(wrapped, "\n")...)
	}
	// wordwrap leaves words longer than width intact
	for i, l := range lines {
		lines[i] = truncate(l, width)
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncateRunesHelper(lines[maxLines-1]+"…", width, "…")
	}
	return lines
}
