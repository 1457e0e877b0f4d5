package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { s.Close() })
	return s
}

// insertTestAnimal inserts a record and returns it with ID set.
func insertTestAnimal(t *testing.T, s *Store, tag, species, name string, age int) *Record {
	t.Helper()
	r := &Record{
		Tag: tag, Species: species, Name: name, Age: age,
		AdmittedAt: time.Now().UTC().Truncate(time.Second),
	}
	id, err := s.InsertAnimal(r)
	require.NoError(t, err)
	require.Positive(t, id)
	return r
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.Migrate())

	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='animals'",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "animals", name)
}

func TestInsertAnimal_SetsID(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	r := insertTestAnimal(t, s, "tag-1", "dog", "Buddy", 4)
	assert.Positive(t, r.ID)
}

func TestInsertAnimal_RejectsDuplicateTag(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	insertTestAnimal(t, s, "tag-1", "dog", "Buddy", 4)

	_, err := s.InsertAnimal(&Record{Tag: "tag-1", Species: "cat", Name: "Mittens", Age: 2})
	require.Error(t, err)
}

func TestInsertAnimal_RejectsNegativeAge(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	// The CHECK constraint backs up the constructor-level validation.
	_, err := s.InsertAnimal(&Record{Tag: "tag-1", Species: "dog", Name: "Buddy", Age: -1})
	require.Error(t, err)
}

func TestAnimalByTag(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	want := insertTestAnimal(t, s, "tag-1", "cat", "Whiskers", 2)

	got, err := s.AnimalByTag("tag-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "cat", got.Species)
	assert.Equal(t, "Whiskers", got.Name)
	assert.Equal(t, 2, got.Age)
}

func TestAnimalByTag_Missing(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	got, err := s.AnimalByTag("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAnimals_AdmissionOrder(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	insertTestAnimal(t, s, "tag-1", "cat", "Mittens", 2)
	insertTestAnimal(t, s, "tag-2", "dog", "Buddy", 4)
	insertTestAnimal(t, s, "tag-3", "animal", "Gus", 1)

	records, err := s.Animals()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Mittens", records[0].Name)
	assert.Equal(t, "Buddy", records[1].Name)
	assert.Equal(t, "Gus", records[2].Name)
}

func TestAnimalsBySpecies(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	insertTestAnimal(t, s, "tag-1", "dog", "Buddy", 4)
	insertTestAnimal(t, s, "tag-2", "cat", "Mittens", 2)
	insertTestAnimal(t, s, "tag-3", "dog", "Rex", 5)

	dogs, err := s.AnimalsBySpecies("dog")
	require.NoError(t, err)
	require.Len(t, dogs, 2)
	assert.Equal(t, "Buddy", dogs[0].Name)
	assert.Equal(t, "Rex", dogs[1].Name)
}

func TestCountAndDeleteAll(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	insertTestAnimal(t, s, "tag-1", "dog", "Buddy", 4)
	insertTestAnimal(t, s, "tag-2", "cat", "Mittens", 2)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, s.DeleteAll())

	n, err = s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}
