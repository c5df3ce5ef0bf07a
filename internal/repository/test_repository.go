package repository

import (
	"github.com/adarshgupta/exam-portal/internal/model"
	"github.com/adarshgupta/exam-portal/internal/store"
)

type TestRepository interface {
	Create(test model.Test) error
	FindByID(id string) (*model.Test, error)
	FindAll() ([]model.Test, error)
}

type testRepository struct {
	store *store.Store
}

func NewTestRepository(st *store.Store) TestRepository {
	return &testRepository{store: st}
}

func (r *testRepository) Create(test model.Test) error {
	unlock := r.store.Lock(store.Tests)
	defer unlock()

	var tests []model.Test
	if err := r.store.Load(store.Tests, &tests); err != nil {
		return err
	}
	tests = append(tests, test)
	return r.store.Save(store.Tests, tests)
}

// FindByID returns (nil, nil) when no test matches.
func (r *testRepository) FindByID(id string) (*model.Test, error) {
	var tests []model.Test
	if err := r.store.Load(store.Tests, &tests); err != nil {
		return nil, err
	}
	for i := range tests {
		if tests[i].ID == id {
			return &tests[i], nil
		}
	}
	return nil, nil
}

// FindAll returns every test in stored order.
func (r *testRepository) FindAll() ([]model.Test, error) {
	var tests []model.Test
	if err := r.store.Load(store.Tests, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}
