package models

import "time"

const (
	SubmissionOK     = "ok"
	SubmissionFailed = "failed"
)

// Submission is a locally journaled encounter submission attempt.
type Submission struct {
	ID          string
	VisitID     ID
	SubmittedAt time.Time
	Attachments int
	Status      string
	Message     string
	Detections  []SubmissionDetection
}

// SubmissionDetection is one detection flattened for storage.
type SubmissionDetection struct {
	Position   int
	Attachment string
	Class      string
	Confidence float64
}
