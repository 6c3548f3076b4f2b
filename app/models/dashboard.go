package models

// AdminStats holds the global counts shown on the admin dashboard.
type AdminStats struct {
	TotalUsers    int `json:"total_users"`
	TotalStudents int `json:"total_students"`
	TotalTeachers int `json:"total_teachers"`
	TotalParents  int `json:"total_parents"`
}

// TeacherStats holds the class-scoped counts shown on the teacher dashboard.
type TeacherStats struct {
	Classes      int `json:"classes"`
	Students     int `json:"students"`
	Assignments  int `json:"assignments"`
	PendingMarks int `json:"pending_marks"`
}

// StudentStats holds the self-scoped counts shown on the student dashboard.
type StudentStats struct {
	Attendance  float64 `json:"attendance"`
	Assignments int     `json:"assignments"`
	Completed   int     `json:"completed"`
	Pending     int     `json:"pending"`
}

// ChildSummary is one linked student row on the parent dashboard.
type ChildSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ClassName *string `json:"class_name,omitempty"`
	Section   *string `json:"section,omitempty"`
}
