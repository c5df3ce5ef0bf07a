package model

import "time"

// Attempt records one completed submission. At most one attempt exists per
// (StudentID, TestID) pair; attempts are never mutated or deleted.
type Attempt struct {
	StudentID string    `json:"studentId"`
	TestID    string    `json:"testId"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Time      time.Time `json:"time"`
}
