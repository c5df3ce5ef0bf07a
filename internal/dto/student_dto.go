package dto

import "encoding/json"

// LoginRequest carries the student login/registration payload. Registration
// is idempotent by (roll, className).
type LoginRequest struct {
	Name      string `json:"name" binding:"required"`
	Father    string `json:"father" binding:"required"`
	Roll      string `json:"roll" binding:"required"`
	ClassName string `json:"className" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

type StudentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Father    string `json:"father"`
	Roll      string `json:"roll"`
	ClassName string `json:"className"`
	Phone     string `json:"phone"`
}

// TestSummaryDTO lists a test without its questions.
type TestSummaryDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subject  string `json:"subject"`
	Duration int    `json:"duration"`
}

// QuestionPaperDTO is a question as shown to a student; it deliberately has
// no field for the answer key.
type QuestionPaperDTO struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// TestPaperDTO is the full paper handed to a student starting a test.
type TestPaperDTO struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Subject   string             `json:"subject"`
	Duration  int                `json:"duration"`
	Questions []QuestionPaperDTO `json:"questions"`
}

// SubmitRequest carries positional answers as raw JSON values. Answers may be
// shorter or longer than the question list; unmatched positions simply score
// nothing.
type SubmitRequest struct {
	StudentID string            `json:"studentId" binding:"required"`
	TestID    string            `json:"testId" binding:"required"`
	Answers   []json.RawMessage `json:"answers"`
}

type ScoreResponse struct {
	Score int `json:"score"`
	Total int `json:"total"`
}
