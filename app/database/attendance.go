package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/lib/pq"
)

// UpsertAttendance records attendance for a student on a date. A second
// submission for the same (student, date) overwrites the earlier status.
func UpsertAttendance(db *sql.DB, studentID string, classID *string, date time.Time, status models.AttendanceStatus, remarks string) error {
	query := `INSERT INTO attendance (student_id, class_id, date, status, remarks)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (student_id, date)
			  DO UPDATE SET status = EXCLUDED.status, remarks = EXCLUDED.remarks, class_id = EXCLUDED.class_id`

	_, err := db.Exec(query, studentID, classID, date, status, remarks)
	if err != nil {
		return fmt.Errorf("failed to save attendance: %v", err)
	}
	return nil
}

// BulkUpsertAttendance saves a whole roster in one transaction and reports
// how many rows were inserted versus overwritten. The xmax check is how
// Postgres tells a fresh insert apart from a conflict update.
func BulkUpsertAttendance(db *sql.DB, classID string, date time.Time, entries map[string]models.AttendanceStatus) (inserted, updated int, err error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO attendance (student_id, class_id, date, status)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (student_id, date)
			  DO UPDATE SET status = EXCLUDED.status, class_id = EXCLUDED.class_id
			  RETURNING (xmax = 0)`

	for studentID, status := range entries {
		var isInsert bool
		if err := tx.QueryRow(query, studentID, classID, date, status).Scan(&isInsert); err != nil {
			return 0, 0, fmt.Errorf("failed to save attendance for student %s: %v", studentID, err)
		}
		if isInsert {
			inserted++
		} else {
			updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit attendance: %v", err)
	}
	return inserted, updated, nil
}

// GetRosterAttendance returns the saved status per student for a class and
// date. Students with no row yet are simply absent from the map.
func GetRosterAttendance(db *sql.DB, classID string, date time.Time) (map[string]models.AttendanceStatus, error) {
	query := `SELECT student_id, status FROM attendance WHERE class_id = $1 AND date = $2`

	rows, err := db.Query(query, classID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved := make(map[string]models.AttendanceStatus)
	for rows.Next() {
		var studentID string
		var status models.AttendanceStatus
		if err := rows.Scan(&studentID, &status); err != nil {
			continue
		}
		saved[studentID] = status
	}
	return saved, nil
}

// GetAttendanceHistory lists attendance rows, newest first, with optional
// class, student and date-range filters.
func GetAttendanceHistory(db *sql.DB, classID, studentID string, fromDate, toDate *time.Time) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.student_id, a.class_id, a.date, a.status, a.remarks, a.created_at,
			  s.name, c.name, c.section
			  FROM attendance a
			  JOIN students s ON s.id = a.student_id
			  LEFT JOIN classes c ON c.id = a.class_id
			  WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if classID != "" {
		argCount++
		query += fmt.Sprintf(" AND a.class_id = $%d", argCount)
		args = append(args, classID)
	}
	if studentID != "" {
		argCount++
		query += fmt.Sprintf(" AND a.student_id = $%d", argCount)
		args = append(args, studentID)
	}
	if fromDate != nil {
		argCount++
		query += fmt.Sprintf(" AND a.date >= $%d", argCount)
		args = append(args, *fromDate)
	}
	if toDate != nil {
		argCount++
		query += fmt.Sprintf(" AND a.date <= $%d", argCount)
		args = append(args, *toDate)
	}

	query += " ORDER BY a.date DESC, s.name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record := &models.Attendance{}
		var studentName string
		var className, section *string
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.ClassID, &record.Date,
			&record.Status, &record.Remarks, &record.CreatedAt,
			&studentName, &className, &section,
		)
		if err != nil {
			continue
		}
		record.Student = &models.Student{ID: record.StudentID, Name: studentName}
		if className != nil && record.ClassID != nil {
			record.Student.Class = &models.Class{ID: *record.ClassID, Name: *className, Section: section}
		}
		records = append(records, record)
	}

	if records == nil {
		records = []*models.Attendance{}
	}
	return records, nil
}

func GetAttendanceByID(db *sql.DB, attendanceID string) (*models.Attendance, error) {
	record := &models.Attendance{}
	var studentName string

	query := `SELECT a.id, a.student_id, a.class_id, a.date, a.status, a.remarks, a.created_at, s.name
			  FROM attendance a
			  JOIN students s ON s.id = a.student_id
			  WHERE a.id = $1`

	err := db.QueryRow(query, attendanceID).Scan(
		&record.ID, &record.StudentID, &record.ClassID, &record.Date,
		&record.Status, &record.Remarks, &record.CreatedAt, &studentName,
	)
	if err != nil {
		return nil, err
	}
	record.Student = &models.Student{ID: record.StudentID, Name: studentName}
	return record, nil
}

func UpdateAttendanceStatus(db *sql.DB, attendanceID string, status models.AttendanceStatus, remarks string) error {
	query := `UPDATE attendance SET status = $1, remarks = $2 WHERE id = $3`

	result, err := db.Exec(query, status, remarks, attendanceID)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetMonthlyAttendanceSummary aggregates per-student day counts for a class
// and calendar month.
func GetMonthlyAttendanceSummary(db *sql.DB, classID string, year, month int) ([]*models.AttendanceSummary, error) {
	query := `SELECT s.id, s.name,
			  COUNT(a.id),
			  COUNT(*) FILTER (WHERE a.status = 'Present'),
			  COUNT(*) FILTER (WHERE a.status = 'Absent'),
			  COUNT(*) FILTER (WHERE a.status = 'Leave')
			  FROM students s
			  LEFT JOIN attendance a ON a.student_id = s.id
			      AND EXTRACT(YEAR FROM a.date) = $2
			      AND EXTRACT(MONTH FROM a.date) = $3
			  WHERE s.class_id = $1
			  GROUP BY s.id, s.name
			  ORDER BY s.name`

	rows, err := db.Query(query, classID, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.AttendanceSummary
	for rows.Next() {
		summary := &models.AttendanceSummary{}
		err := rows.Scan(
			&summary.StudentID, &summary.StudentName, &summary.TotalDays,
			&summary.PresentDays, &summary.AbsentDays, &summary.LeaveDays,
		)
		if err != nil {
			continue
		}
		summaries = append(summaries, summary)
	}

	if summaries == nil {
		summaries = []*models.AttendanceSummary{}
	}
	return summaries, nil
}

// GetAttendanceRates computes per-student attendance percentages for a class.
func GetAttendanceRates(db *sql.DB, classID string) ([]*models.AttendanceRate, error) {
	query := `SELECT s.name,
			  COUNT(a.id),
			  COUNT(*) FILTER (WHERE a.status = 'Present'),
			  COALESCE(ROUND(
			      COUNT(*) FILTER (WHERE a.status = 'Present')::numeric
			      / NULLIF(COUNT(a.id), 0) * 100, 2), 0)
			  FROM students s
			  LEFT JOIN attendance a ON a.student_id = s.id
			  WHERE s.class_id = $1
			  GROUP BY s.id, s.name
			  ORDER BY s.name`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []*models.AttendanceRate
	for rows.Next() {
		rate := &models.AttendanceRate{}
		if err := rows.Scan(&rate.StudentName, &rate.Total, &rate.Present, &rate.Percentage); err != nil {
			continue
		}
		rates = append(rates, rate)
	}

	if rates == nil {
		rates = []*models.AttendanceRate{}
	}
	return rates, nil
}

// GetStudentAttendance lists one student's attendance, newest first.
func GetStudentAttendance(db *sql.DB, studentID string) ([]*models.Attendance, error) {
	query := `SELECT id, student_id, class_id, date, status, remarks, created_at
			  FROM attendance
			  WHERE student_id = $1
			  ORDER BY date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record := &models.Attendance{}
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.ClassID, &record.Date,
			&record.Status, &record.Remarks, &record.CreatedAt,
		)
		if err != nil {
			continue
		}
		records = append(records, record)
	}

	if records == nil {
		records = []*models.Attendance{}
	}
	return records, nil
}

// GetAttendanceForStudents lists attendance for a set of students, used by
// the parent view across linked children.
func GetAttendanceForStudents(db *sql.DB, studentIDs []string) ([]*models.Attendance, error) {
	if len(studentIDs) == 0 {
		return []*models.Attendance{}, nil
	}

	query := `SELECT a.id, a.student_id, a.class_id, a.date, a.status, a.remarks, a.created_at, s.name
			  FROM attendance a
			  JOIN students s ON s.id = a.student_id
			  WHERE a.student_id = ANY($1)
			  ORDER BY a.date DESC, s.name`

	rows, err := db.Query(query, pq.Array(studentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record := &models.Attendance{}
		var studentName string
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.ClassID, &record.Date,
			&record.Status, &record.Remarks, &record.CreatedAt, &studentName,
		)
		if err != nil {
			continue
		}
		record.Student = &models.Student{ID: record.StudentID, Name: studentName}
		records = append(records, record)
	}

	if records == nil {
		records = []*models.Attendance{}
	}
	return records, nil
}

// GetStudentAttendancePercentage returns the overall present percentage for
// one student, rounded to two decimals. Zero when no records exist.
func GetStudentAttendancePercentage(db *sql.DB, studentID string) (float64, error) {
	var percentage float64
	query := `SELECT COALESCE(ROUND(
			      COUNT(*) FILTER (WHERE status = 'Present')::numeric
			      / NULLIF(COUNT(*), 0) * 100, 2), 0)
			  FROM attendance WHERE student_id = $1`

	err := db.QueryRow(query, studentID).Scan(&percentage)
	if err != nil {
		return 0, err
	}
	return percentage, nil
}
