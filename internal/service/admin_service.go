package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/adarshgupta/exam-portal/internal/apperr"
	"github.com/adarshgupta/exam-portal/internal/dto"
	"github.com/adarshgupta/exam-portal/internal/model"
	"github.com/adarshgupta/exam-portal/internal/repository"
)

type AdminService interface {
	CreateTest(req dto.TestCreateDTO) (*dto.CreatedResponse, error)
	ListResults() ([]dto.ResultRow, error)
}

type adminService struct {
	studentRepo repository.StudentRepository
	testRepo    repository.TestRepository
	attemptRepo repository.AttemptRepository
}

func NewAdminService(
	studentRepo repository.StudentRepository,
	testRepo repository.TestRepository,
	attemptRepo repository.AttemptRepository,
) AdminService {
	return &adminService{
		studentRepo: studentRepo,
		testRepo:    testRepo,
		attemptRepo: attemptRepo,
	}
}

// CreateTest publishes a new test immediately; there is no draft workflow.
func (s *adminService) CreateTest(req dto.TestCreateDTO) (*dto.CreatedResponse, error) {
	if req.Title == "" || req.Subject == "" || req.ClassName == "" || req.Duration <= 0 || len(req.Questions) == 0 {
		return nil, apperr.Validation("invalid test")
	}

	var questions []model.Question
	if err := copier.Copy(&questions, &req.Questions); err != nil {
		return nil, fmt.Errorf("preparing questions: %w", err)
	}

	test := model.Test{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Subject:   req.Subject,
		ClassName: req.ClassName,
		Duration:  req.Duration,
		Questions: questions,
		Status:    model.StatusPublished,
	}
	if err := s.testRepo.Create(test); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create test")
		return nil, fmt.Errorf("creating test: %w", err)
	}

	log.Info().Str("testID", test.ID).Str("title", test.Title).Str("className", test.ClassName).Msg("Test created")
	return &dto.CreatedResponse{Status: "created"}, nil
}

// ListResults joins every attempt against its student and test. The join is
// best-effort: a dangling reference produces a row with a null student or a
// missing test title instead of an error.
func (s *adminService) ListResults() ([]dto.ResultRow, error) {
	attempts, err := s.attemptRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load attempts")
		return nil, fmt.Errorf("loading attempts: %w", err)
	}
	students, err := s.studentRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load students")
		return nil, fmt.Errorf("loading students: %w", err)
	}
	tests, err := s.testRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load tests")
		return nil, fmt.Errorf("loading tests: %w", err)
	}

	studentByID := make(map[string]model.Student, len(students))
	for _, st := range students {
		studentByID[st.ID] = st
	}
	titleByTestID := make(map[string]string, len(tests))
	for _, t := range tests {
		titleByTestID[t.ID] = t.Title
	}

	rows := make([]dto.ResultRow, 0, len(attempts))
	for _, a := range attempts {
		row := dto.ResultRow{Score: a.Score, Total: a.Total, Time: a.Time}
		if st, ok := studentByID[a.StudentID]; ok {
			var sr dto.StudentResponse
			if err := copier.Copy(&sr, &st); err != nil {
				return nil, fmt.Errorf("preparing result row: %w", err)
			}
			row.Student = &sr
		}
		row.Test = titleByTestID[a.TestID]
		rows = append(rows, row)
	}
	return rows, nil
}
