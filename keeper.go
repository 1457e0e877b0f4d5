package menagerie

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jward/menagerie/internal/store"
)

// Keeper maintains a persistent roster of animals backed by SQLite.
// It is the bridge between the in-memory Zoo and the store: animals
// are admitted one at a time, and a Zoo can be rebuilt from the
// roster in admission order.
type Keeper struct {
	store  *store.Store
	logger *zap.Logger
}

// Option configures a Keeper.
type Option func(*Keeper)

// WithLogger attaches a structured logger to the Keeper. The default
// is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(k *Keeper) {
		k.logger = logger
	}
}

// Open creates a Keeper backed by a SQLite database at dbPath,
// running migrations as needed.
func Open(dbPath string, opts ...Option) (*Keeper, error) {
	s, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("menagerie: create store: %w", err)
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("menagerie: migrate: %w", err)
	}

	k := &Keeper{
		store:  s,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// Close releases the Keeper's database resources.
func (k *Keeper) Close() error {
	return k.store.Close()
}

// Store returns the underlying Store for direct access.
func (k *Keeper) Store() *Store {
	return k.store
}

// Admit persists a to the roster, assigning it a fresh tag. The
// returned record carries the tag and admission time.
func (k *Keeper) Admit(a Animal) (*Record, error) {
	rec := &store.Record{
		Tag:        uuid.NewString(),
		Species:    a.Species(),
		Name:       a.Name(),
		Age:        a.Age(),
		AdmittedAt: time.Now().UTC(),
	}
	if _, err := k.store.InsertAnimal(rec); err != nil {
		return nil, fmt.Errorf("menagerie: admit %s: %w", a.Name(), err)
	}
	k.logger.Debug("admitted animal",
		zap.String("tag", rec.Tag),
		zap.String("species", rec.Species),
		zap.String("name", rec.Name),
		zap.Int("age", rec.Age),
	)
	return rec, nil
}

// Zoo rebuilds an in-memory Zoo from the roster, in admission order.
// Records are materialized through the same constructors as live
// animals, so a roster written by one process speaks identically in
// another.
func (k *Keeper) Zoo(opts ...ZooOption) (*Zoo, error) {
	records, err := k.store.Animals()
	if err != nil {
		return nil, fmt.Errorf("menagerie: load roster: %w", err)
	}
	z := NewZoo(opts...)
	for _, rec := range records {
		a, err := NewBySpecies(rec.Species, rec.Name, rec.Age)
		if err != nil {
			return nil, fmt.Errorf("menagerie: rebuild %q: %w", rec.Tag, err)
		}
		z.AddAnimal(a)
	}
	k.logger.Debug("rebuilt zoo", zap.Int("animals", z.Len()))
	return z, nil
}

// Reset clears the roster.
func (k *Keeper) Reset() error {
	if err := k.store.DeleteAll(); err != nil {
		return fmt.Errorf("menagerie: reset: %w", err)
	}
	k.logger.Info("roster cleared")
	return nil
}
