package repository

import (
	"github.com/adarshgupta/exam-portal/internal/model"
	"github.com/adarshgupta/exam-portal/internal/store"
)

type StudentRepository interface {
	FindByID(id string) (*model.Student, error)
	FindAll() ([]model.Student, error)
	GetOrCreate(student model.Student) (*model.Student, error)
}

type studentRepository struct {
	store *store.Store
}

func NewStudentRepository(st *store.Store) StudentRepository {
	return &studentRepository{store: st}
}

// FindByID returns (nil, nil) when no student matches.
func (r *studentRepository) FindByID(id string) (*model.Student, error) {
	var students []model.Student
	if err := r.store.Load(store.Students, &students); err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == id {
			return &students[i], nil
		}
	}
	return nil, nil
}

func (r *studentRepository) FindAll() ([]model.Student, error) {
	var students []model.Student
	if err := r.store.Load(store.Students, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetOrCreate returns the stored student matching student's (roll, className)
// pair, or appends and persists the given one. The collection lock is held
// across lookup and insert so the natural key stays unique under concurrent
// logins.
func (r *studentRepository) GetOrCreate(student model.Student) (*model.Student, error) {
	unlock := r.store.Lock(store.Students)
	defer unlock()

	var students []model.Student
	if err := r.store.Load(store.Students, &students); err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].Roll == student.Roll && students[i].ClassName == student.ClassName {
			return &students[i], nil
		}
	}
	students = append(students, student)
	if err := r.store.Save(store.Students, students); err != nil {
		return nil, err
	}
	return &student, nil
}
