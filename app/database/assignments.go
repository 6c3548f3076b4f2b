package database

import (
	"database/sql"
	"fmt"

	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/lib/pq"
)

func CreateAssignment(db *sql.DB, assignment *models.Assignment) error {
	query := `INSERT INTO assignments (title, description, class_id, due_date, created_by)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		assignment.Title, assignment.Description, assignment.ClassID,
		assignment.DueDate, assignment.CreatedBy,
	).Scan(&assignment.ID, &assignment.CreatedAt)
}

func GetAllAssignments(db *sql.DB) ([]*models.Assignment, error) {
	query := `SELECT a.id, a.title, a.description, a.class_id, a.due_date, COALESCE(a.created_by::text, ''), a.created_at, c.name
			  FROM assignments a
			  JOIN classes c ON c.id = a.class_id
			  ORDER BY a.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		assignment := &models.Assignment{}
		err := rows.Scan(
			&assignment.ID, &assignment.Title, &assignment.Description,
			&assignment.ClassID, &assignment.DueDate, &assignment.CreatedBy,
			&assignment.CreatedAt, &assignment.ClassName,
		)
		if err != nil {
			continue
		}
		assignments = append(assignments, assignment)
	}

	if assignments == nil {
		assignments = []*models.Assignment{}
	}
	return assignments, nil
}

func GetAssignmentByID(db *sql.DB, assignmentID string) (*models.Assignment, error) {
	assignment := &models.Assignment{}
	query := `SELECT a.id, a.title, a.description, a.class_id, a.due_date, COALESCE(a.created_by::text, ''), a.created_at, c.name
			  FROM assignments a
			  JOIN classes c ON c.id = a.class_id
			  WHERE a.id = $1`

	err := db.QueryRow(query, assignmentID).Scan(
		&assignment.ID, &assignment.Title, &assignment.Description,
		&assignment.ClassID, &assignment.DueDate, &assignment.CreatedBy,
		&assignment.CreatedAt, &assignment.ClassName,
	)
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// GetAssignmentsByClass lists a class's assignments, newest first.
func GetAssignmentsByClass(db *sql.DB, classID string) ([]*models.Assignment, error) {
	query := `SELECT a.id, a.title, a.description, a.class_id, a.due_date, COALESCE(a.created_by::text, ''), a.created_at, c.name
			  FROM assignments a
			  JOIN classes c ON c.id = a.class_id
			  WHERE a.class_id = $1
			  ORDER BY a.created_at DESC`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		assignment := &models.Assignment{}
		err := rows.Scan(
			&assignment.ID, &assignment.Title, &assignment.Description,
			&assignment.ClassID, &assignment.DueDate, &assignment.CreatedBy,
			&assignment.CreatedAt, &assignment.ClassName,
		)
		if err != nil {
			continue
		}
		assignments = append(assignments, assignment)
	}

	if assignments == nil {
		assignments = []*models.Assignment{}
	}
	return assignments, nil
}

func DeleteAssignment(db *sql.DB, assignmentID string) error {
	result, err := db.Exec(`DELETE FROM assignments WHERE id = $1`, assignmentID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpsertSubmission saves a student's answer. Resubmitting replaces the text
// and refreshes the timestamp but keeps any existing grade.
func UpsertSubmission(db *sql.DB, assignmentID, studentID, submissionText string) error {
	query := `INSERT INTO assignment_submissions (assignment_id, student_id, submission_text)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (assignment_id, student_id)
			  DO UPDATE SET submission_text = EXCLUDED.submission_text, submitted_at = NOW()`

	_, err := db.Exec(query, assignmentID, studentID, submissionText)
	if err != nil {
		return fmt.Errorf("failed to save submission: %v", err)
	}
	return nil
}

// GetSubmissionsForAssignment lists submissions with student names for the
// grading view.
func GetSubmissionsForAssignment(db *sql.DB, assignmentID string) ([]*models.Submission, error) {
	query := `SELECT sub.id, sub.assignment_id, sub.student_id, sub.submission_text,
			  sub.marks, sub.remarks, sub.submitted_at, sub.graded_at, s.name
			  FROM assignment_submissions sub
			  JOIN students s ON s.id = sub.student_id
			  WHERE sub.assignment_id = $1
			  ORDER BY s.name`

	rows, err := db.Query(query, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		submission := &models.Submission{}
		err := rows.Scan(
			&submission.ID, &submission.AssignmentID, &submission.StudentID,
			&submission.SubmissionText, &submission.Marks, &submission.Remarks,
			&submission.SubmittedAt, &submission.GradedAt, &submission.StudentName,
		)
		if err != nil {
			continue
		}
		submissions = append(submissions, submission)
	}

	if submissions == nil {
		submissions = []*models.Submission{}
	}
	return submissions, nil
}

// GetStudentSubmission fetches a student's submission for one assignment.
// Returns sql.ErrNoRows when nothing has been handed in.
func GetStudentSubmission(db *sql.DB, assignmentID, studentID string) (*models.Submission, error) {
	submission := &models.Submission{}
	query := `SELECT id, assignment_id, student_id, submission_text, marks, remarks, submitted_at, graded_at
			  FROM assignment_submissions
			  WHERE assignment_id = $1 AND student_id = $2`

	err := db.QueryRow(query, assignmentID, studentID).Scan(
		&submission.ID, &submission.AssignmentID, &submission.StudentID,
		&submission.SubmissionText, &submission.Marks, &submission.Remarks,
		&submission.SubmittedAt, &submission.GradedAt,
	)
	if err != nil {
		return nil, err
	}
	return submission, nil
}

// GradeSubmission records marks and optional remarks on a submission.
func GradeSubmission(db *sql.DB, submissionID string, marks float64, remarks *string) error {
	query := `UPDATE assignment_submissions
			  SET marks = $1, remarks = $2, graded_at = NOW()
			  WHERE id = $3`

	result, err := db.Exec(query, marks, remarks, submissionID)
	if err != nil {
		return fmt.Errorf("failed to grade submission: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetSubmissionCounts returns how many of a class's assignments a student
// has submitted, alongside the assignment total.
func GetSubmissionCounts(db *sql.DB, studentID string, classID *string) (total, completed int, err error) {
	if classID == nil {
		return 0, 0, nil
	}

	query := `SELECT
			  (SELECT COUNT(*) FROM assignments WHERE class_id = $1),
			  (SELECT COUNT(*) FROM assignment_submissions sub
			   JOIN assignments a ON a.id = sub.assignment_id
			   WHERE sub.student_id = $2 AND a.class_id = $1)`

	err = db.QueryRow(query, *classID, studentID).Scan(&total, &completed)
	return total, completed, err
}

// GetSubmissionsForStudents lists graded work across a set of students, for
// the parent view.
func GetSubmissionsForStudents(db *sql.DB, studentIDs []string) ([]*models.Submission, error) {
	if len(studentIDs) == 0 {
		return []*models.Submission{}, nil
	}

	query := `SELECT sub.id, sub.assignment_id, sub.student_id, sub.submission_text,
			  sub.marks, sub.remarks, sub.submitted_at, sub.graded_at, s.name, a.title
			  FROM assignment_submissions sub
			  JOIN students s ON s.id = sub.student_id
			  JOIN assignments a ON a.id = sub.assignment_id
			  WHERE sub.student_id = ANY($1)
			  ORDER BY sub.submitted_at DESC`

	rows, err := db.Query(query, pq.Array(studentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		submission := &models.Submission{}
		err := rows.Scan(
			&submission.ID, &submission.AssignmentID, &submission.StudentID,
			&submission.SubmissionText, &submission.Marks, &submission.Remarks,
			&submission.SubmittedAt, &submission.GradedAt,
			&submission.StudentName, &submission.AssignmentTitle,
		)
		if err != nil {
			continue
		}
		submissions = append(submissions, submission)
	}

	if submissions == nil {
		submissions = []*models.Submission{}
	}
	return submissions, nil
}
