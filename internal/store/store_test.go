package store

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newMemStore() *Store {
	return New(afero.NewMemMapFs(), "data")
}

func TestInitCreatesEmptyCollections(t *testing.T) {
	s := newMemStore()
	require.NoError(t, s.Init(Students, Tests, Attempts))

	var docs []doc
	for _, name := range []string{Students, Tests, Attempts} {
		require.NoError(t, s.Load(name, &docs))
		assert.Empty(t, docs)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	s := newMemStore()
	require.NoError(t, s.Init(Students))
	require.NoError(t, s.Save(Students, []doc{{ID: "1", Name: "a"}}))

	// A second Init must not clobber existing documents.
	require.NoError(t, s.Init(Students))

	var docs []doc
	require.NoError(t, s.Load(Students, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0].Name)
}

func TestSaveLoadRoundTripPreservesOrder(t *testing.T) {
	s := newMemStore()
	require.NoError(t, s.Init(Tests))

	in := []doc{{ID: "3", Name: "c"}, {ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	require.NoError(t, s.Save(Tests, in))

	var out []doc
	require.NoError(t, s.Load(Tests, &out))
	assert.Equal(t, in, out)
}

func TestLoadMissingCollectionFails(t *testing.T) {
	s := newMemStore()

	var docs []doc
	err := s.Load(Students, &docs)
	assert.Error(t, err)
}

func TestLoadMalformedDocumentFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "data")
	require.NoError(t, afero.WriteFile(fs, "data/students.json", []byte("{not json"), 0o644))

	var docs []doc
	err := s.Load(Students, &docs)
	assert.Error(t, err)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "data")
	require.NoError(t, s.Init(Attempts))
	require.NoError(t, s.Save(Attempts, []doc{{ID: "1"}}))

	exists, err := afero.Exists(fs, "data/attempts.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLockSerializesAccess(t *testing.T) {
	s := newMemStore()
	require.NoError(t, s.Init(Attempts))

	const writers = 20
	done := make(chan struct{})
	for i := 0; i < writers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			unlock := s.Lock(Attempts)
			defer unlock()

			var docs []doc
			if err := s.Load(Attempts, &docs); err != nil {
				t.Error(err)
				return
			}
			docs = append(docs, doc{ID: "x"})
			if err := s.Save(Attempts, docs); err != nil {
				t.Error(err)
			}
		}()
	}
	for i := 0; i < writers; i++ {
		<-done
	}

	var docs []doc
	require.NoError(t, s.Load(Attempts, &docs))
	assert.Len(t, docs, writers)
}
