package models

import "time"

type Assignment struct {
	ID          string     `json:"id" validate:"required,uuid"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	ClassID     string     `json:"class_id" validate:"required,uuid"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`

	ClassName string `json:"class_name,omitempty"`
}

// Submission represents a student's submission for an assignment. Exactly one
// row may exist per (assignment, student) pair; resubmission overwrites.
type Submission struct {
	ID             string     `json:"id" validate:"required,uuid"`
	AssignmentID   string     `json:"assignment_id" validate:"required,uuid"`
	StudentID      string     `json:"student_id" validate:"required,uuid"`
	SubmissionText string     `json:"submission_text,omitempty"`
	Marks          *float64   `json:"marks,omitempty"`
	Remarks        *string    `json:"remarks,omitempty"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	GradedAt       *time.Time `json:"graded_at,omitempty"`

	StudentName     string `json:"student_name,omitempty"`
	AssignmentTitle string `json:"assignment_title,omitempty"`
}
