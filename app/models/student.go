package models

import "time"

// Student represents an enrolled student. A student is linked to at most one
// user account via UserID.
type Student struct {
	ID          string     `json:"id" validate:"required,uuid"`
	Name        string     `json:"name" validate:"required"`
	ClassID     *string    `json:"class_id,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	ParentName  *string    `json:"parent_name,omitempty"`
	ParentPhone *string    `json:"parent_phone,omitempty"`
	Address     *string    `json:"address,omitempty"`
	Photo       *string    `json:"photo,omitempty"`
	UserID      *string    `json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Class *Class `json:"class,omitempty"`
}

// FullClassName returns the class name with its section, e.g. "Grade 5 B".
func (s *Student) FullClassName() string {
	if s.Class == nil {
		return ""
	}
	if s.Class.Section != nil && *s.Class.Section != "" {
		return s.Class.Name + " " + *s.Class.Section
	}
	return s.Class.Name
}
