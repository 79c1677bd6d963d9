// Package testutil provides ticket fixtures and assertions shared by the
// package tests. All generators are deterministic for a given seed.
package testutil

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vanderheijden86/stickyboard/internal/store"
	"github.com/vanderheijden86/stickyboard/pkg/model"
	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// GeneratorConfig controls ticket generation.
type GeneratorConfig struct {
	Seed      int64          // Random seed for determinism (0 = use current time)
	IDPrefix  string         // Prefix for ticket IDs (default: "T")
	ColorMix  []palette.Name // Colors to draw from (nil = whole palette)
	HTMLRatio float64        // Share of descriptions wrapped in inline markup
}

// DefaultConfig returns a config suitable for most tests.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:     42,
		IDPrefix: "T",
	}
}

// Generator creates ticket fixtures.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// New creates a Generator with the given config.
func New(cfg GeneratorConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = "T"
	}
	if len(cfg.ColorMix) == 0 {
		cfg.ColorMix = palette.Names()
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewDefault creates a Generator with default config.
func NewDefault() *Generator {
	return New(DefaultConfig())
}

var words = []string{
	"buy", "milk", "fix", "login", "call", "dentist", "review", "PR",
	"ship", "release", "water", "plants", "book", "flights", "pay", "rent",
}

// Tickets returns n tickets with sequential ids and random content.
func (g *Generator) Tickets(n int) []model.Ticket {
	out := make([]model.Ticket, n)
	for i := range out {
		out[i] = model.Ticket{
			ID:          fmt.Sprintf("%s-%d", g.cfg.IDPrefix, i+1),
			Description: g.description(),
			Color:       string(g.cfg.ColorMix[g.rng.Intn(len(g.cfg.ColorMix))]),
		}
	}
	return out
}

func (g *Generator) description() string {
	n := 1 + g.rng.Intn(5)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[g.rng.Intn(len(words))]
	}
	text := strings.Join(parts, " ")
	if g.cfg.HTMLRatio > 0 && g.rng.Float64() < g.cfg.HTMLRatio {
		text = "<b>" + text + "</b>"
	}
	return text
}

// Seed creates every ticket in s.
func Seed(s *store.Store, tickets []model.Ticket) error {
	for _, t := range tickets {
		if err := s.Create(t.ID, t.Description, t.Color); err != nil {
			return err
		}
	}
	return nil
}

// MemoryStore returns a store over a fresh in-memory backend, seeded with
// tickets.
func MemoryStore(tickets ...model.Ticket) (*store.Store, error) {
	s := store.New(store.NewMemoryBackend())
	if err := Seed(s, tickets); err != nil {
		return nil, err
	}
	return s, nil
}
