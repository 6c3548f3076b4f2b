package models

import "testing"

func TestValidRole(t *testing.T) {
	for _, role := range []string{"admin", "teacher", "student", "parent"} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"", "Admin", "superuser"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true, want false", role)
		}
	}
}

func TestValidAttendanceStatus(t *testing.T) {
	for _, status := range []string{"Present", "Absent", "Leave"} {
		if !ValidAttendanceStatus(status) {
			t.Errorf("ValidAttendanceStatus(%q) = false, want true", status)
		}
	}
	for _, status := range []string{"", "present", "Late"} {
		if ValidAttendanceStatus(status) {
			t.Errorf("ValidAttendanceStatus(%q) = true, want false", status)
		}
	}
}

func TestFullClassName(t *testing.T) {
	section := "B"
	empty := ""

	tests := []struct {
		name    string
		student Student
		want    string
	}{
		{"no class", Student{}, ""},
		{"class without section", Student{Class: &Class{Name: "Grade 5"}}, "Grade 5"},
		{"class with empty section", Student{Class: &Class{Name: "Grade 5", Section: &empty}}, "Grade 5"},
		{"class with section", Student{Class: &Class{Name: "Grade 5", Section: &section}}, "Grade 5 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.student.FullClassName(); got != tt.want {
				t.Errorf("FullClassName() = %q, want %q", got, tt.want)
			}
		})
	}
}
