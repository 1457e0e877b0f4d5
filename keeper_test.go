package menagerie

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestKeeper(t *testing.T) *Keeper {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "zoo.db")
	k, err := Open(dbPath, WithLogger(zap.NewNop()))
	require.NoError(t, err)
	t.Cleanup(func() { k.Close() })
	return k
}

func TestOpen_CreatesStore(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "zoo.db")
	k, err := Open(dbPath)
	require.NoError(t, err)
	defer k.Close()

	require.NotNil(t, k.Store())

	// Verify the DB is usable (migration ran).
	n, err := k.Store().Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_InvalidPath(t *testing.T) {
	t.Parallel()
	_, err := Open("/nonexistent/dir/zoo.db")
	require.Error(t, err)
}

func TestAdmit_AssignsTagAndPersists(t *testing.T) {
	t.Parallel()
	k := newTestKeeper(t)

	d, err := NewDog("Buddy", 4)
	require.NoError(t, err)

	rec, err := k.Admit(d)
	require.NoError(t, err)
	require.NotEmpty(t, rec.Tag)
	assert.Positive(t, rec.ID)
	assert.Equal(t, SpeciesDog, rec.Species)
	assert.Equal(t, "Buddy", rec.Name)
	assert.Equal(t, 4, rec.Age)
	assert.False(t, rec.AdmittedAt.IsZero())

	stored, err := k.Store().AnimalByTag(rec.Tag)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, rec.ID, stored.ID)
}

func TestZoo_RebuildsRosterInAdmissionOrder(t *testing.T) {
	t.Parallel()
	k := newTestKeeper(t)

	d, err := NewDog("Buddy", 4)
	require.NoError(t, err)
	c, err := NewCat("Mittens", 2)
	require.NoError(t, err)
	_, err = k.Admit(d)
	require.NoError(t, err)
	_, err = k.Admit(c)
	require.NoError(t, err)

	var buf bytes.Buffer
	z, err := k.Zoo(WithOutput(&buf))
	require.NoError(t, err)
	require.Equal(t, 2, z.Len())

	require.NoError(t, z.ListAnimalNames())
	assert.Equal(t, "Animals in the zoo: Buddy Mittens \n", buf.String())

	// Rebuilt animals speak through the same dispatch as live ones.
	buf.Reset()
	require.NoError(t, z.SpeakAll())
	assert.Equal(t, "Buddy says: Woof!\nMittens says: Meow!\n", buf.String())
}

func TestZoo_EmptyRoster(t *testing.T) {
	t.Parallel()
	k := newTestKeeper(t)

	z, err := k.Zoo(WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Zero(t, z.Len())
}

func TestReset_ClearsRoster(t *testing.T) {
	t.Parallel()
	k := newTestKeeper(t)

	a, err := NewAnimal("Gus", 1)
	require.NoError(t, err)
	_, err = k.Admit(a)
	require.NoError(t, err)

	require.NoError(t, k.Reset())

	n, err := k.Store().Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRoster_SurvivesReopen(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "zoo.db")

	k, err := Open(dbPath)
	require.NoError(t, err)
	d, err := NewDog("Rex", 5)
	require.NoError(t, err)
	_, err = k.Admit(d)
	require.NoError(t, err)
	require.NoError(t, k.Close())

	k2, err := Open(dbPath)
	require.NoError(t, err)
	defer k2.Close()

	var buf bytes.Buffer
	z, err := k2.Zoo(WithOutput(&buf))
	require.NoError(t, err)
	require.NoError(t, z.SpeakAll())
	assert.Equal(t, "Rex says: Woof!\n", buf.String())
}
