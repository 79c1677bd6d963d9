// Package palette is the color registry for sticky-note tickets.
//
// A ticket color has three faces: the canonical name stored on disk and used
// as the ticket's class ("lightgreen"), the rendered form older clients wrote
// into storage ("rgb(144, 238, 144)"), and the hex value the terminal paints
// with. The registry is fixed; every swatch the UI offers comes from it.
package palette

import (
	"strings"
)

// Name is a canonical color name. It doubles as storage value and class.
type Name string

// Canonical colors, in swatch order.
const (
	LightPink   Name = "lightpink"
	LightGreen  Name = "lightgreen"
	LightBlue   Name = "lightblue"
	LightSalmon Name = "lightsalmon"
)

// Entry is one registry row.
type Entry struct {
	Name     Name
	Rendered string // rgb(r, g, b) as produced by a browser's computed style
	Hex      string
}

var entries = []Entry{
	{Name: LightPink, Rendered: "rgb(255, 182, 193)", Hex: "#FFB6C1"},
	{Name: LightGreen, Rendered: "rgb(144, 238, 144)", Hex: "#90EE90"},
	{Name: LightBlue, Rendered: "rgb(173, 216, 230)", Hex: "#ADD8E6"},
	{Name: LightSalmon, Rendered: "rgb(255, 160, 122)", Hex: "#FFA07A"},
}

var (
	byName     = make(map[Name]Entry, len(entries))
	byRendered = make(map[string]Entry, len(entries))
)

func init() {
	for _, e := range entries {
		byName[e.Name] = e
		byRendered[normalizeRendered(e.Rendered)] = e
	}
}

// Entries returns the registry rows in swatch order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Names returns the canonical names in swatch order.
func Names() []Name {
	out := make([]Name, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

// Lookup returns the entry for a canonical name.
func Lookup(n Name) (Entry, bool) {
	e, ok := byName[n]
	return e, ok
}

// FromRendered maps a rendered color string to its canonical name.
// Whitespace inside the rgb() form is not significant.
func FromRendered(rendered string) (Name, bool) {
	e, ok := byRendered[normalizeRendered(rendered)]
	return e.Name, ok
}

// Resolve accepts either a canonical name or a rendered color string and
// returns the canonical name. Unknown values report ok=false.
func Resolve(raw string) (Name, bool) {
	trimmed := strings.TrimSpace(raw)
	if e, ok := byName[Name(strings.ToLower(trimmed))]; ok {
		return e.Name, true
	}
	return FromRendered(trimmed)
}

// Canonical returns the canonical name for a known color in either form,
// and raw unchanged otherwise.
func Canonical(raw string) string {
	if n, ok := Resolve(raw); ok {
		return string(n)
	}
	return raw
}

// IsKnown reports whether n is a registry member.
func IsKnown(n Name) bool {
	_, ok := byName[n]
	return ok
}

// Index returns the swatch position of n, or -1.
func Index(n Name) int {
	for i, e := range entries {
		if e.Name == n {
			return i
		}
	}
	return -1
}

// At returns the name at swatch position i, wrapping in both directions.
func At(i int) Name {
	n := len(entries)
	return entries[((i%n)+n)%n].Name
}

// String implements fmt.Stringer.
func (n Name) String() string {
	return string(n)
}

func normalizeRendered(s string) string {
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), "")
}
