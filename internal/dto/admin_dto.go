package dto

import (
	"encoding/json"
	"time"
)

// QuestionCreateDTO is used within TestCreateDTO for admin test creation.
type QuestionCreateDTO struct {
	Text    string          `json:"text" binding:"required"`
	Options []string        `json:"options" binding:"required"`
	Correct json.RawMessage `json:"correct" binding:"required"`
}

// TestCreateDTO is for an admin to create a new test with all its questions.
// Created tests are published immediately.
type TestCreateDTO struct {
	Title     string              `json:"title" binding:"required"`
	Subject   string              `json:"subject" binding:"required"`
	ClassName string              `json:"className" binding:"required"`
	Duration  int                 `json:"duration" binding:"required,gt=0"`
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type CreatedResponse struct {
	Status string `json:"status"`
}

// ResultRow is one attempt joined against its student and test. The join is
// best-effort: Student is null and Test is omitted when the referenced record
// is missing.
type ResultRow struct {
	Student *StudentResponse `json:"student"`
	Test    string           `json:"test,omitempty"`
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Time    time.Time        `json:"time"`
}
