package store

import (
	"fmt"
	"io"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/stickyboard/pkg/model"
	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// Export writes every ticket as a localStorage-style dump: a JSON object
// whose values are JSON-encoded records in string form. It returns the
// number of tickets written.
func (s *Store) Export(w io.Writer) (int, error) {
	tickets, err := s.List()
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}

	dump := make(map[string]string, len(tickets))
	for _, t := range tickets {
		data, err := model.EncodeRecord(t.Record())
		if err != nil {
			return 0, fmt.Errorf("export %s: %w", t.ID, err)
		}
		dump[t.ID] = string(data)
	}

	out, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("export: encoding dump: %w", err)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return 0, fmt.Errorf("export: writing dump: %w", err)
	}
	return len(dump), nil
}

// Import reads a localStorage-style dump and creates each entry,
// overwriting tickets with the same id. Rendered rgb() colors are stored as
// their palette name. Values that are not valid records are skipped and
// logged. It returns the number of tickets created.
func (s *Store) Import(r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("import: reading dump: %w", err)
	}

	var dump map[string]string
	if err := json.Unmarshal(raw, &dump); err != nil {
		return 0, fmt.Errorf("import: parsing dump: %w", err)
	}

	ids := make([]string, 0, len(dump))
	for id := range dump {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	n := 0
	for _, id := range ids {
		rec, err := model.DecodeRecord([]byte(dump[id]))
		if err == nil {
			err = model.FromRecord(id, rec).Validate()
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("id", id).Msg("import: skipping malformed record")
			continue
		}
		if err := s.Create(id, rec.Description, palette.Canonical(rec.BackgroundColor)); err != nil {
			return n, fmt.Errorf("import: %w", err)
		}
		n++
	}
	return n, nil
}
