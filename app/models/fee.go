package models

import "time"

// Fee represents a single charge for a student. Amount is stored with
// 2-decimal precision and is never negative.
type Fee struct {
	ID        string     `json:"id" validate:"required,uuid"`
	StudentID string     `json:"student_id" validate:"required,uuid"`
	Amount    float64    `json:"amount" validate:"gte=0"`
	Status    FeeStatus  `json:"status" validate:"required,oneof=paid unpaid"`
	PaidOn    *time.Time `json:"paid_on,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	StudentName string  `json:"student_name,omitempty"`
	ClassName   string  `json:"class_name,omitempty"`
	Section     *string `json:"section,omitempty"`
}

// FeeStats holds the fee dashboard aggregates.
type FeeStats struct {
	TotalStudents  int     `json:"total_students"`
	TotalCollected float64 `json:"total_collected"`
	TotalPending   float64 `json:"total_pending"`
	PendingRecords int     `json:"pending_records"`
}

// StudentDue holds a per-student unpaid rollup.
type StudentDue struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	ClassName   string  `json:"class_name"`
	Email       *string `json:"email,omitempty"`
	TotalDue    float64 `json:"total_due"`
	Invoices    int     `json:"invoices"`
}

// FeeSummary holds paid/unpaid rollups for reports and student profiles.
type FeeSummary struct {
	TotalPaid    float64 `json:"total_paid"`
	TotalUnpaid  float64 `json:"total_unpaid"`
	TotalRecords int     `json:"total_records"`
}
