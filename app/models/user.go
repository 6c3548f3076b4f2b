package models

import "time"

type User struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Username  string    `json:"username" validate:"required"`
	Password  string    `json:"-" validate:"required,min=8"`
	Role      Role      `json:"role" validate:"required,oneof=admin teacher student parent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// StudentID is set only for accounts with the student role that are
	// linked to a student record.
	StudentID *string `json:"student_id,omitempty"`
}
