//go:build ignore

// generate_testdata.go writes localStorage-style ticket dumps for manual
// testing and render benchmarking.
// Usage: go run scripts/generate_testdata.go
//
// Creates:
//
//	testdata/dumps/small.json   (12 tickets)
//	testdata/dumps/medium.json  (200 tickets)
//	testdata/dumps/large.json   (2000 tickets)
//
// Load one with: sb --import testdata/dumps/medium.json
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vanderheijden86/stickyboard/pkg/testutil"
)

type datasetSpec struct {
	name string
	size int
	html float64
}

var datasets = []datasetSpec{
	{"small", 12, 0},
	{"medium", 200, 0.2},
	{"large", 2000, 0.3},
}

func main() {
	outputDir := "testdata/dumps"
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	for _, ds := range datasets {
		fmt.Printf("Generating %s dump (%d tickets)...\n", ds.name, ds.size)

		gen := testutil.New(testutil.GeneratorConfig{
			Seed:      int64(ds.size),
			IDPrefix:  ds.name,
			HTMLRatio: ds.html,
		})
		s, err := testutil.MemoryStore(gen.Tickets(ds.size)...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed %s: %v\n", ds.name, err)
			os.Exit(1)
		}

		path := filepath.Join(outputDir, ds.name+".json")
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", path, err)
			os.Exit(1)
		}
		n, err := s.Export(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  Wrote %s (%d tickets)\n", path, n)
	}

	fmt.Println("Done!")
}
