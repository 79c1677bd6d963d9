package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/vanderheijden86/stickyboard/internal/store"
	"github.com/vanderheijden86/stickyboard/pkg/model"
	"github.com/vanderheijden86/stickyboard/pkg/palette"
	"github.com/vanderheijden86/stickyboard/pkg/testutil"
)

// backendFactories opens each backend type at a fresh location under dir.
func backendFactories() map[store.BackendType]func(dir string) (store.Backend, error) {
	return map[store.BackendType]func(string) (store.Backend, error){
		store.BackendMemory: func(string) (store.Backend, error) {
			return store.NewMemoryBackend(), nil
		},
		store.BackendJSON: func(dir string) (store.Backend, error) {
			return store.OpenJSONFile(filepath.Join(dir, "tickets.json"))
		},
		store.BackendSQLite: func(dir string) (store.Backend, error) {
			return store.OpenSQLite(filepath.Join(dir, "tickets.db"))
		},
	}
}

func TestStoreOperations(t *testing.T) {
	for typ, open := range backendFactories() {
		t.Run(string(typ), func(t *testing.T) {
			b, err := open(t.TempDir())
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			s := store.New(b)
			defer s.Close()

			if err := s.Create("a1", "Buy milk", "lightgreen"); err != nil {
				t.Fatalf("Create: %v", err)
			}
			testutil.AssertStored(t, s, "a1", "Buy milk", "lightgreen")

			// Create on an existing id overwrites silently.
			if err := s.Create("a1", "Buy oat milk", "lightblue"); err != nil {
				t.Fatalf("Create overwrite: %v", err)
			}
			testutil.AssertStored(t, s, "a1", "Buy oat milk", "lightblue")
			testutil.AssertTicketCount(t, s, 1)

			if err := s.Update("a1", "done", "lightpink"); err != nil {
				t.Fatalf("Update: %v", err)
			}
			testutil.AssertStored(t, s, "a1", "done", "lightpink")

			err = s.Update("nope", "x", "lightpink")
			if !errors.Is(err, store.ErrNotFound) {
				t.Errorf("Update missing: expected ErrNotFound, got %v", err)
			}
			testutil.AssertNotStored(t, s, "nope")

			if err := s.Remove("a1"); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			testutil.AssertNotStored(t, s, "a1")
			if err := s.Remove("a1"); err != nil {
				t.Errorf("Remove absent should be a no-op, got %v", err)
			}
			testutil.AssertTicketCount(t, s, 0)
		})
	}
}

func TestStoreRejectsEmptyID(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	if err := s.Create("", "x", "lightblue"); !errors.Is(err, model.ErrEmptyID) {
		t.Errorf("expected ErrEmptyID, got %v", err)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	for _, typ := range []store.BackendType{store.BackendJSON, store.BackendSQLite} {
		t.Run(string(typ), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "board."+string(typ))
			tickets := testutil.NewDefault().Tickets(5)

			b, err := store.Open(typ, path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			s := store.New(b)
			if err := testutil.Seed(s, tickets); err != nil {
				t.Fatalf("seed: %v", err)
			}
			if err := s.Remove(tickets[0].ID); err != nil {
				t.Fatal(err)
			}
			if err := s.Close(); err != nil {
				t.Fatal(err)
			}

			b, err = store.Open(typ, path)
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			s = store.New(b)
			defer s.Close()

			got, err := s.List()
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertSameTickets(t, got, tickets[1:])
		})
	}
}

func TestSQLiteKeysKeepInsertionOrder(t *testing.T) {
	b, err := store.OpenSQLite(filepath.Join(t.TempDir(), "order.db"))
	if err != nil {
		t.Fatal(err)
	}
	s := store.New(b)
	defer s.Close()

	for _, id := range []string{"zeta", "alpha", "mid"} {
		if err := s.Create(id, id, "lightblue"); err != nil {
			t.Fatal(err)
		}
	}
	// Updating must not move a ticket to the end.
	if err := s.Update("zeta", "changed", "lightpink"); err != nil {
		t.Fatal(err)
	}

	got, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, tk := range got {
		ids = append(ids, tk.ID)
	}
	if strings.Join(ids, ",") != "zeta,alpha,mid" {
		t.Errorf("unexpected order: %v", ids)
	}
}

func TestListSkipsMalformedRecords(t *testing.T) {
	b := store.NewMemoryBackend()
	if err := b.Set("bad", []byte(`{not json`)); err != nil {
		t.Fatal(err)
	}
	s := store.New(b)
	if err := s.Create("good", "ok", "lightblue"); err != nil {
		t.Fatal(err)
	}

	// Decodes, but has no color to render or save with.
	if err := b.Set("nocolor", []byte(`{"ticketDescription":"x"}`)); err != nil {
		t.Fatal(err)
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != "good" {
		t.Errorf("expected only the good ticket, got %+v", got)
	}
}

func TestUpdateKeepsExtraFields(t *testing.T) {
	for typ, open := range backendFactories() {
		t.Run(string(typ), func(t *testing.T) {
			b, err := open(t.TempDir())
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer b.Close()
			raw := `{"ticketDescription":"old","ticketBackgroundColor":"lightblue","pinned":true}`
			if err := b.Set("a", []byte(raw)); err != nil {
				t.Fatal(err)
			}
			s := store.New(b)
			if err := s.Update("a", "new", "lightpink"); err != nil {
				t.Fatalf("Update: %v", err)
			}

			testutil.AssertStored(t, s, "a", "new", "lightpink")
			stored, _, err := b.Get("a")
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(stored), `"pinned":true`) {
				t.Errorf("extra field dropped: %s", stored)
			}
		})
	}
}

func TestSQLitePathWithURIChars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "odd?name#1.db")

	b, err := store.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	s := store.New(b)
	if err := s.Create("a", "x", "lightgreen"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database not created at the given path: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() == "odd" {
			t.Errorf("path was cut at the query separator: %v", entries)
		}
	}

	b, err = store.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	s = store.New(b)
	defer s.Close()
	testutil.AssertStored(t, s, "a", "x", "lightgreen")
}

func TestJSONFileBackend_BrowserDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localStorage.json")
	dump := `{
  "k3j9x2": "{\"ticketDescription\":\"Buy milk\",\"ticketBackgroundColor\":\"rgb(144, 238, 144)\"}"
}`
	if err := os.WriteFile(path, []byte(dump), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := store.OpenJSONFile(path)
	if err != nil {
		t.Fatalf("OpenJSONFile: %v", err)
	}
	s := store.New(b)
	tk, err := s.Get("k3j9x2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if tk.Description != "Buy milk" {
		t.Errorf("description = %q", tk.Description)
	}
	if name, ok := tk.ColorName(); !ok || name != palette.LightGreen {
		t.Errorf("color resolved to (%q, %v)", name, ok)
	}
}

func TestJSONFileBackend_MissingAndEmptyFile(t *testing.T) {
	dir := t.TempDir()
	b, err := store.OpenJSONFile(filepath.Join(dir, "sub", "missing.json"))
	if err != nil {
		t.Fatalf("missing file should open empty: %v", err)
	}
	keys, _ := b.Keys()
	if len(keys) != 0 {
		t.Errorf("expected empty store, got %v", keys)
	}
	// First write creates the directory and file.
	if err := b.Set("k", []byte(`{"ticketDescription":"","ticketBackgroundColor":"lightblue"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sub", "missing.json")); err != nil {
		t.Errorf("expected file to be created: %v", err)
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte("  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.OpenJSONFile(empty); err != nil {
		t.Errorf("empty file should open: %v", err)
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("[1,2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.OpenJSONFile(corrupt); err == nil {
		t.Error("expected error for corrupt file")
	}
}

func TestParseBackendType(t *testing.T) {
	cases := map[string]store.BackendType{
		"":        store.BackendJSON,
		"json":    store.BackendJSON,
		"SQLite":  store.BackendSQLite,
		"sqlite3": store.BackendSQLite,
		"memory":  store.BackendMemory,
	}
	for in, want := range cases {
		got, err := store.ParseBackendType(in)
		if err != nil || got != want {
			t.Errorf("ParseBackendType(%q) = (%q, %v), want %q", in, got, err, want)
		}
	}
	if _, err := store.ParseBackendType("redis"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

// TestRoundTripProperty checks that whatever sequence of creates, updates
// and removes is applied, listing the store yields exactly the model's
// contents on every backend.
func TestRoundTripProperty(t *testing.T) {
	colors := palette.Names()
	for typ, open := range backendFactories() {
		t.Run(string(typ), func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				b, err := open(t.TempDir())
				if err != nil {
					rt.Fatalf("open: %v", err)
				}
				s := store.New(b)
				defer s.Close()

				want := map[string]model.Ticket{}
				ids := rapid.SampledFrom([]string{"a", "b", "c", "d", "e"})
				steps := rapid.IntRange(1, 25).Draw(rt, "steps")
				for i := 0; i < steps; i++ {
					id := ids.Draw(rt, "id")
					desc := rapid.String().Draw(rt, "desc")
					color := string(rapid.SampledFrom(colors).Draw(rt, "color"))
					switch rapid.IntRange(0, 2).Draw(rt, "op") {
					case 0:
						if err := s.Create(id, desc, color); err != nil {
							rt.Fatalf("create: %v", err)
						}
						want[id] = model.Ticket{ID: id, Description: desc, Color: color}
					case 1:
						err := s.Update(id, desc, color)
						if _, ok := want[id]; ok {
							if err != nil {
								rt.Fatalf("update: %v", err)
							}
							want[id] = model.Ticket{ID: id, Description: desc, Color: color}
						} else if !errors.Is(err, store.ErrNotFound) {
							rt.Fatalf("update of missing %s: expected ErrNotFound, got %v", id, err)
						}
					case 2:
						if err := s.Remove(id); err != nil {
							rt.Fatalf("remove: %v", err)
						}
						delete(want, id)
					}
				}

				got, err := s.List()
				if err != nil {
					rt.Fatalf("list: %v", err)
				}
				if len(got) != len(want) {
					rt.Fatalf("listed %d tickets, want %d", len(got), len(want))
				}
				for _, tk := range got {
					if want[tk.ID] != tk {
						rt.Fatalf("ticket %s: got %+v, want %+v", tk.ID, tk, want[tk.ID])
					}
				}
			})
		})
	}
}
