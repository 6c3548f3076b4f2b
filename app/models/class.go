package models

import "time"

type Class struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Name      string    `json:"name" validate:"required"`
	Section   *string   `json:"section,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentCount int `json:"student_count,omitempty"`
}
