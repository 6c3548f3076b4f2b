package database

import (
	"database/sql"
	"fmt"

	"github.com/LUCY-sama29/school-erp/app/models"
)

func CreateMark(db *sql.DB, mark *models.Mark) error {
	query := `INSERT INTO marks (student_id, subject, marks, max_marks, exam)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		mark.StudentID, mark.Subject, mark.Marks, mark.MaxMarks, mark.Exam,
	).Scan(&mark.ID, &mark.CreatedAt)
}

// CreateMarksBatch inserts a set of subject marks for one exam in a single
// transaction, so a report card never shows half an exam.
func CreateMarksBatch(db *sql.DB, marks []*models.Mark) error {
	if len(marks) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO marks (student_id, subject, marks, max_marks, exam)
			  VALUES ($1, $2, $3, $4, $5)`

	for _, mark := range marks {
		if _, err := tx.Exec(query, mark.StudentID, mark.Subject, mark.Marks, mark.MaxMarks, mark.Exam); err != nil {
			return fmt.Errorf("failed to save mark for %s: %v", mark.Subject, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit marks: %v", err)
	}
	return nil
}

// GetMarksByStudentAndExam returns one student's subject marks for a term.
func GetMarksByStudentAndExam(db *sql.DB, studentID, exam string) ([]*models.Mark, error) {
	query := `SELECT id, student_id, subject, marks, max_marks, exam, created_at
			  FROM marks
			  WHERE student_id = $1 AND exam = $2
			  ORDER BY subject`

	rows, err := db.Query(query, studentID, exam)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []*models.Mark
	for rows.Next() {
		mark := &models.Mark{}
		err := rows.Scan(
			&mark.ID, &mark.StudentID, &mark.Subject, &mark.Marks,
			&mark.MaxMarks, &mark.Exam, &mark.CreatedAt,
		)
		if err != nil {
			continue
		}
		marks = append(marks, mark)
	}

	if marks == nil {
		marks = []*models.Mark{}
	}
	return marks, nil
}

// GetExamsForStudent lists the distinct exam terms a student has marks for.
func GetExamsForStudent(db *sql.DB, studentID string) ([]string, error) {
	rows, err := db.Query(
		`SELECT DISTINCT exam FROM marks WHERE student_id = $1 ORDER BY exam`, studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []string
	for rows.Next() {
		var exam string
		if err := rows.Scan(&exam); err != nil {
			continue
		}
		exams = append(exams, exam)
	}

	if exams == nil {
		exams = []string{}
	}
	return exams, nil
}

func DeleteMark(db *sql.DB, markID string) error {
	result, err := db.Exec(`DELETE FROM marks WHERE id = $1`, markID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
