package repository

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarshgupta/exam-portal/internal/model"
	"github.com/adarshgupta/exam-portal/internal/store"
)

func newMemStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(afero.NewMemMapFs(), "data")
	require.NoError(t, st.Init(store.Students, store.Tests, store.Attempts))
	return st
}

func TestStudentGetOrCreateIsIdempotentByNaturalKey(t *testing.T) {
	repo := NewStudentRepository(newMemStore(t))

	first, err := repo.GetOrCreate(model.Student{ID: "s1", Name: "Ravi", Roll: "1", ClassName: "10", Phone: "9876543210"})
	require.NoError(t, err)

	// Same (roll, className) with different fields returns the stored record
	// unchanged and adds nothing.
	second, err := repo.GetOrCreate(model.Student{ID: "s2", Name: "Someone Else", Roll: "1", ClassName: "10", Phone: "8888888888"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ravi", second.Name)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStudentGetOrCreateDistinguishesClasses(t *testing.T) {
	repo := NewStudentRepository(newMemStore(t))

	_, err := repo.GetOrCreate(model.Student{ID: "s1", Roll: "1", ClassName: "10"})
	require.NoError(t, err)
	_, err = repo.GetOrCreate(model.Student{ID: "s2", Roll: "1", ClassName: "9"})
	require.NoError(t, err)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStudentFindByIDMissingReturnsNil(t *testing.T) {
	repo := NewStudentRepository(newMemStore(t))

	got, err := repo.FindByID("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTestRepositoryPreservesInsertionOrder(t *testing.T) {
	repo := NewTestRepository(newMemStore(t))

	require.NoError(t, repo.Create(model.Test{ID: "t1", Title: "First"}))
	require.NoError(t, repo.Create(model.Test{ID: "t2", Title: "Second"}))
	require.NoError(t, repo.Create(model.Test{ID: "t3", Title: "Third"}))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"t1", "t2", "t3"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestAttemptCreateIfAbsentRejectsDuplicatePair(t *testing.T) {
	repo := NewAttemptRepository(newMemStore(t))

	first := model.Attempt{StudentID: "s1", TestID: "t1", Score: 2, Total: 2, Time: time.Now().UTC()}
	created, err := repo.CreateIfAbsent(first)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(model.Attempt{StudentID: "s1", TestID: "t1", Score: 0, Total: 2, Time: time.Now().UTC()})
	require.NoError(t, err)
	assert.False(t, created)

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2, all[0].Score)
}

func TestAttemptFindByStudent(t *testing.T) {
	repo := NewAttemptRepository(newMemStore(t))

	for _, a := range []model.Attempt{
		{StudentID: "s1", TestID: "t1"},
		{StudentID: "s2", TestID: "t1"},
		{StudentID: "s1", TestID: "t2"},
	} {
		created, err := repo.CreateIfAbsent(a)
		require.NoError(t, err)
		require.True(t, created)
	}

	mine, err := repo.FindByStudent("s1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	exists, err := repo.Exists("s2", "t1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists("s2", "t2")
	require.NoError(t, err)
	assert.False(t, exists)
}
