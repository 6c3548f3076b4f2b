package models

import "time"

// Attendance represents a student's attendance on a date. Exactly one row may
// exist per (student, date) pair; saves overwrite rather than duplicate.
type Attendance struct {
	ID        string           `json:"id" validate:"required,uuid"`
	StudentID string           `json:"student_id" validate:"required,uuid"`
	ClassID   *string          `json:"class_id,omitempty"`
	Date      time.Time        `json:"date" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=Present Absent Leave"`
	Remarks   string           `json:"remarks,omitempty"`
	CreatedAt time.Time        `json:"created_at"`

	Student *Student `json:"student,omitempty"`
}

// AttendanceSummary holds per-student status counts over a period.
type AttendanceSummary struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	TotalDays   int    `json:"total_days"`
	PresentDays int    `json:"present_days"`
	AbsentDays  int    `json:"absent_days"`
	LeaveDays   int    `json:"leave_days"`
}

// AttendanceRate holds a student's attendance percentage.
type AttendanceRate struct {
	StudentName string  `json:"student_name"`
	Total       int     `json:"total"`
	Present     int     `json:"present"`
	Percentage  float64 `json:"percentage"`
}
