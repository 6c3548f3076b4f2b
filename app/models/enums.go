package models

// Role defines the account roles accepted at the application boundary.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

// ValidRole reports whether a submitted role string is one of the four
// enumerated roles. The database does not enforce this.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
	Leave   AttendanceStatus = "Leave"
)

// ValidAttendanceStatus reports whether a submitted status is one of the
// enumerated attendance statuses.
func ValidAttendanceStatus(s string) bool {
	switch AttendanceStatus(s) {
	case Present, Absent, Leave:
		return true
	}
	return false
}

// FeeStatus defines the status of a fee record.
type FeeStatus string

const (
	FeePaid   FeeStatus = "paid"
	FeeUnpaid FeeStatus = "unpaid"
)
