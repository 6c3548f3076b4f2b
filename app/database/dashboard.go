package database

import (
	"database/sql"

	"github.com/LUCY-sama29/school-erp/app/models"
)

func GetAdminStats(db *sql.DB) (*models.AdminStats, error) {
	stats := &models.AdminStats{}

	query := `SELECT
			  (SELECT COUNT(*) FROM users),
			  (SELECT COUNT(*) FROM students),
			  (SELECT COUNT(*) FROM users WHERE role = 'teacher'),
			  (SELECT COUNT(*) FROM users WHERE role = 'parent')`

	err := db.QueryRow(query).Scan(
		&stats.TotalUsers, &stats.TotalStudents, &stats.TotalTeachers, &stats.TotalParents,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetTeacherStats aggregates the teacher dashboard counters. Pending marks
// counts assignments that still have at least one ungraded submission.
func GetTeacherStats(db *sql.DB) (*models.TeacherStats, error) {
	stats := &models.TeacherStats{}

	query := `SELECT
			  (SELECT COUNT(*) FROM classes),
			  (SELECT COUNT(*) FROM students),
			  (SELECT COUNT(*) FROM assignments),
			  (SELECT COUNT(DISTINCT a.id)
			   FROM assignments a
			   LEFT JOIN assignment_submissions sub
			       ON sub.assignment_id = a.id AND sub.marks IS NOT NULL
			   WHERE sub.id IS NULL)`

	err := db.QueryRow(query).Scan(
		&stats.Classes, &stats.Students, &stats.Assignments, &stats.PendingMarks,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetStudentStats aggregates the student dashboard counters for one student.
func GetStudentStats(db *sql.DB, studentID string) (*models.StudentStats, error) {
	stats := &models.StudentStats{}

	attendance, err := GetStudentAttendancePercentage(db, studentID)
	if err != nil {
		return nil, err
	}
	stats.Attendance = attendance

	var classID *string
	if err := db.QueryRow(`SELECT class_id FROM students WHERE id = $1`, studentID).Scan(&classID); err != nil {
		return nil, err
	}

	total, completed, err := GetSubmissionCounts(db, studentID, classID)
	if err != nil {
		return nil, err
	}
	stats.Assignments = total
	stats.Completed = completed
	if pending := total - completed; pending > 0 {
		stats.Pending = pending
	}

	return stats, nil
}

// GetChildrenSummaries lists a parent's linked students with class labels.
func GetChildrenSummaries(db *sql.DB, parentUserID string) ([]*models.ChildSummary, error) {
	query := `SELECT s.id, s.name, c.name, c.section
			  FROM parent_students ps
			  JOIN students s ON s.id = ps.student_id
			  LEFT JOIN classes c ON c.id = s.class_id
			  WHERE ps.parent_user_id = $1
			  ORDER BY s.name`

	rows, err := db.Query(query, parentUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var children []*models.ChildSummary
	for rows.Next() {
		child := &models.ChildSummary{}
		if err := rows.Scan(&child.ID, &child.Name, &child.ClassName, &child.Section); err != nil {
			continue
		}
		children = append(children, child)
	}

	if children == nil {
		children = []*models.ChildSummary{}
	}
	return children, nil
}
