package repository

import (
	"github.com/adarshgupta/exam-portal/internal/model"
	"github.com/adarshgupta/exam-portal/internal/store"
)

type AttemptRepository interface {
	FindAll() ([]model.Attempt, error)
	FindByStudent(studentID string) ([]model.Attempt, error)
	Exists(studentID, testID string) (bool, error)
	CreateIfAbsent(attempt model.Attempt) (bool, error)
}

type attemptRepository struct {
	store *store.Store
}

func NewAttemptRepository(st *store.Store) AttemptRepository {
	return &attemptRepository{store: st}
}

func (r *attemptRepository) FindAll() ([]model.Attempt, error) {
	var attempts []model.Attempt
	if err := r.store.Load(store.Attempts, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) FindByStudent(studentID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	if err := r.store.Load(store.Attempts, &attempts); err != nil {
		return nil, err
	}
	matched := make([]model.Attempt, 0)
	for _, a := range attempts {
		if a.StudentID == studentID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *attemptRepository) Exists(studentID, testID string) (bool, error) {
	var attempts []model.Attempt
	if err := r.store.Load(store.Attempts, &attempts); err != nil {
		return false, err
	}
	for _, a := range attempts {
		if a.StudentID == studentID && a.TestID == testID {
			return true, nil
		}
	}
	return false, nil
}

// CreateIfAbsent appends and persists the attempt unless one already exists
// for the same (studentID, testID) pair. It reports whether the attempt was
// created. The collection lock is held across the duplicate check and the
// insert, which is what actually enforces the at-most-one-attempt invariant.
func (r *attemptRepository) CreateIfAbsent(attempt model.Attempt) (bool, error) {
	unlock := r.store.Lock(store.Attempts)
	defer unlock()

	var attempts []model.Attempt
	if err := r.store.Load(store.Attempts, &attempts); err != nil {
		return false, err
	}
	for _, a := range attempts {
		if a.StudentID == attempt.StudentID && a.TestID == attempt.TestID {
			return false, nil
		}
	}
	attempts = append(attempts, attempt)
	if err := r.store.Save(store.Attempts, attempts); err != nil {
		return false, err
	}
	return true, nil
}
