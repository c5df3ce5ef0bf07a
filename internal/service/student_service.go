package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/adarshgupta/exam-portal/internal/apperr"
	"github.com/adarshgupta/exam-portal/internal/dto"
	"github.com/adarshgupta/exam-portal/internal/model"
	"github.com/adarshgupta/exam-portal/internal/repository"
	"github.com/adarshgupta/exam-portal/internal/validation"
)

type StudentService interface {
	RegisterOrFetch(req dto.LoginRequest) (*dto.StudentResponse, error)
	ListAvailableTests(studentID string) ([]dto.TestSummaryDTO, error)
	GetTestPaper(testID string) (*dto.TestPaperDTO, error)
	Submit(req dto.SubmitRequest) (*dto.ScoreResponse, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	testRepo    repository.TestRepository
	attemptRepo repository.AttemptRepository
}

func NewStudentService(
	studentRepo repository.StudentRepository,
	testRepo repository.TestRepository,
	attemptRepo repository.AttemptRepository,
) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		testRepo:    testRepo,
		attemptRepo: attemptRepo,
	}
}

// RegisterOrFetch returns the existing student for (roll, className) or
// registers a new one. An existing record is returned unchanged even when the
// other submitted fields differ: registration is idempotent by key, not by
// value.
func (s *studentService) RegisterOrFetch(req dto.LoginRequest) (*dto.StudentResponse, error) {
	if req.Name == "" || req.Father == "" || req.Roll == "" || req.ClassName == "" || req.Phone == "" {
		return nil, apperr.Validation("invalid student data")
	}
	if !validation.IsNumeric(req.Roll) {
		return nil, apperr.Validation("invalid roll number")
	}
	if !validation.IsValidPhone(req.Phone) {
		return nil, apperr.Validation("invalid phone number")
	}

	candidate := model.Student{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Father:    req.Father,
		Roll:      req.Roll,
		ClassName: req.ClassName,
		Phone:     req.Phone,
	}
	student, err := s.studentRepo.GetOrCreate(candidate)
	if err != nil {
		log.Error().Err(err).Str("roll", req.Roll).Str("className", req.ClassName).Msg("Failed to register student")
		return nil, fmt.Errorf("registering student: %w", err)
	}

	var resp dto.StudentResponse
	if err := copier.Copy(&resp, student); err != nil {
		return nil, fmt.Errorf("preparing student response: %w", err)
	}
	return &resp, nil
}

// ListAvailableTests returns every published test for the student's class
// that the student has not attempted yet, in stored order.
func (s *studentService) ListAvailableTests(studentID string) ([]dto.TestSummaryDTO, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID).Msg("Failed to load student")
		return nil, fmt.Errorf("loading student: %w", err)
	}
	if student == nil {
		return nil, apperr.NotFound("student not found")
	}

	attempts, err := s.attemptRepo.FindByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID).Msg("Failed to load attempts")
		return nil, fmt.Errorf("loading attempts: %w", err)
	}
	attempted := make(map[string]struct{}, len(attempts))
	for _, a := range attempts {
		attempted[a.TestID] = struct{}{}
	}

	tests, err := s.testRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load tests")
		return nil, fmt.Errorf("loading tests: %w", err)
	}

	available := make([]dto.TestSummaryDTO, 0)
	for _, t := range tests {
		if t.Status != model.StatusPublished || t.ClassName != student.ClassName {
			continue
		}
		if _, done := attempted[t.ID]; done {
			continue
		}
		available = append(available, dto.TestSummaryDTO{
			ID:       t.ID,
			Title:    t.Title,
			Subject:  t.Subject,
			Duration: t.Duration,
		})
	}
	return available, nil
}

// GetTestPaper returns the test with the answer key stripped from every
// question. Eligibility was filtered at listing time; this trusts the caller.
func (s *studentService) GetTestPaper(testID string) (*dto.TestPaperDTO, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("Failed to load test")
		return nil, fmt.Errorf("loading test: %w", err)
	}
	if test == nil {
		return nil, apperr.NotFound("test not found")
	}

	// QuestionPaperDTO has no Correct field, so the copy drops the answer key.
	var paper dto.TestPaperDTO
	if err := copier.Copy(&paper, test); err != nil {
		return nil, fmt.Errorf("preparing test paper: %w", err)
	}
	return &paper, nil
}

// Submit scores the answers positionally against the test's answer key and
// records the attempt. A pair that has already submitted is rejected before
// any scoring happens.
func (s *studentService) Submit(req dto.SubmitRequest) (*dto.ScoreResponse, error) {
	attempted, err := s.attemptRepo.Exists(req.StudentID, req.TestID)
	if err != nil {
		log.Error().Err(err).Str("studentID", req.StudentID).Str("testID", req.TestID).Msg("Failed to check attempts")
		return nil, fmt.Errorf("checking attempts: %w", err)
	}
	if attempted {
		return nil, apperr.Forbidden("test already attempted")
	}

	test, err := s.testRepo.FindByID(req.TestID)
	if err != nil {
		log.Error().Err(err).Str("testID", req.TestID).Msg("Failed to load test")
		return nil, fmt.Errorf("loading test: %w", err)
	}
	if test == nil {
		return nil, apperr.NotFound("test not found")
	}

	score := 0
	for i, q := range test.Questions {
		if i < len(req.Answers) && rawJSONEqual(req.Answers[i], q.Correct) {
			score++
		}
	}

	attempt := model.Attempt{
		StudentID: req.StudentID,
		TestID:    req.TestID,
		Score:     score,
		Total:     len(test.Questions),
		Time:      time.Now().UTC(),
	}
	created, err := s.attemptRepo.CreateIfAbsent(attempt)
	if err != nil {
		log.Error().Err(err).Str("studentID", req.StudentID).Str("testID", req.TestID).Msg("Failed to save attempt")
		return nil, fmt.Errorf("saving attempt: %w", err)
	}
	if !created {
		// Lost the race to a concurrent submission for the same pair.
		return nil, apperr.Forbidden("test already attempted")
	}
	return &dto.ScoreResponse{Score: attempt.Score, Total: attempt.Total}, nil
}

// rawJSONEqual compares two raw JSON values after compaction. Formatting
// never affects grading, but types must match exactly: the index 1 and the
// string "1" are different answers.
func rawJSONEqual(a, b json.RawMessage) bool {
	var ca, cb bytes.Buffer
	if json.Compact(&ca, a) != nil || json.Compact(&cb, b) != nil {
		return false
	}
	return bytes.Equal(ca.Bytes(), cb.Bytes())
}
