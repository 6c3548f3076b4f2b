package models

import "time"

// Mark represents a per-subject score recorded under a term label.
type Mark struct {
	ID        string    `json:"id" validate:"required,uuid"`
	StudentID string    `json:"student_id" validate:"required,uuid"`
	Subject   string    `json:"subject" validate:"required"`
	Marks     float64   `json:"marks" validate:"gte=0"`
	MaxMarks  float64   `json:"max_marks" validate:"gt=0"`
	Exam      string    `json:"exam" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
