package model

import "encoding/json"

// StatusPublished is the only status a test ever takes; tests go live the
// moment an admin creates them.
const StatusPublished = "published"

// Question holds the answer key as a raw JSON value (an option index or a
// literal answer). Correct must never reach a student-facing response.
type Question struct {
	Text    string          `json:"text"`
	Options []string        `json:"options"`
	Correct json.RawMessage `json:"correct"`
}

// Test is immutable after creation. Question order is significant: answers
// are submitted positionally.
type Test struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Subject   string     `json:"subject"`
	ClassName string     `json:"className"`
	Duration  int        `json:"duration"`
	Questions []Question `json:"questions"`
	Status    string     `json:"status"`
}
