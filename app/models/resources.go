package models

import "time"

// Notice is a class-scoped (or school-wide, when ClassID is nil) announcement.
type Notice struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Title     string    `json:"title" validate:"required"`
	Message   string    `json:"message" validate:"required"`
	ClassID   *string   `json:"class_id,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`

	ClassName *string `json:"class_name,omitempty"`
}

type Homework struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	ClassID     string    `json:"class_id" validate:"required,uuid"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`

	ClassName   string `json:"class_name,omitempty"`
	StudentName string `json:"student_name,omitempty"`
}

// Book is an uploaded PDF resource scoped to a class.
type Book struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Title       string    `json:"title" validate:"required"`
	Subject     string    `json:"subject" validate:"required"`
	Description string    `json:"description,omitempty"`
	ClassID     string    `json:"class_id" validate:"required,uuid"`
	FilePath    string    `json:"file_path"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`

	ClassName string `json:"class_name,omitempty"`
}
