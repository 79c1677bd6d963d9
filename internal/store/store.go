package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vanderheijden86/stickyboard/pkg/metrics"
	"github.com/vanderheijden86/stickyboard/pkg/model"
)

// ErrNotFound is returned when an operation needs a ticket that is not stored.
var ErrNotFound = errors.New("ticket not found")

// Store is the ticket persistence layer. It is the single source of truth
// for ticket content; every mutation writes through to the backend before
// returning.
type Store struct {
	mu      sync.Mutex
	backend Backend
	logger  zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for skipped records and write tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New wraps a backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend { return s.backend }

// Create writes a new entry. An existing entry with the same id is
// overwritten; callers are responsible for choosing a fresh id.
func (s *Store) Create(id, description, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.putLocked(model.Ticket{ID: id, Description: description, Color: color}); err != nil {
		return fmt.Errorf("create %s: %w", id, err)
	}
	s.logger.Debug().Str("id", id).Str("color", color).Msg("ticket created")
	return nil
}

// Update sets the description and color of an existing entry. Other
// fields in the stored value are kept. It returns an error wrapping
// ErrNotFound if id is not stored.
func (s *Store) Update(id, description, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer metrics.Timer(metrics.StoreWrite)()

	raw, ok, err := s.backend.Get(id)
	if err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	t := model.Ticket{ID: id, Description: description, Color: color}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	data, err := model.MergeRecord(raw, t.Record())
	if err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	if err := s.backend.Set(id, data); err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	s.logger.Debug().Str("id", id).Str("color", color).Msg("ticket updated")
	return nil
}

// Remove deletes an entry. Removing an absent id is a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer metrics.Timer(metrics.StoreWrite)()

	if err := s.backend.Delete(id); err != nil {
		return fmt.Errorf("remove %s: %w", id, err)
	}
	s.logger.Debug().Str("id", id).Msg("ticket removed")
	return nil
}

// Get returns a single ticket.
func (s *Store) Get(id string) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.backend.Get(id)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("get %s: %w", id, err)
	}
	if !ok {
		return model.Ticket{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	rec, err := model.DecodeRecord(raw)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("get %s: %w", id, err)
	}
	return model.FromRecord(id, rec), nil
}

// Exists reports whether id is stored.
func (s *Store) Exists(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok, err := s.backend.Get(id)
	return ok, err
}

// List returns every stored ticket in backend-native order. Entries whose
// value cannot be decoded, or that fail validation (no color), are skipped
// and logged.
func (s *Store) List() ([]model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer metrics.Timer(metrics.StoreLoad)()

	keys, err := s.backend.Keys()
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	tickets := make([]model.Ticket, 0, len(keys))
	for _, key := range keys {
		raw, ok, err := s.backend.Get(key)
		if err != nil {
			return nil, fmt.Errorf("list: reading %s: %w", key, err)
		}
		if !ok {
			continue
		}
		rec, err := model.DecodeRecord(raw)
		if err != nil {
			s.logger.Warn().Err(err).Str("id", key).Msg("skipping malformed record")
			continue
		}
		t := model.FromRecord(key, rec)
		if err := t.Validate(); err != nil {
			s.logger.Warn().Err(err).Str("id", key).Msg("skipping invalid record")
			continue
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// Close releases the backend.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Close()
}

func (s *Store) putLocked(t model.Ticket) error {
	defer metrics.Timer(metrics.StoreWrite)()

	if err := t.Validate(); err != nil {
		return err
	}
	data, err := model.EncodeRecord(t.Record())
	if err != nil {
		return err
	}
	return s.backend.Set(t.ID, data)
}
