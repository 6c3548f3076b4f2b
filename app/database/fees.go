package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/lib/pq"
)

// FeeFilter narrows the fee listing. Empty fields are ignored; all set
// fields must match.
type FeeFilter struct {
	ClassID  string
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
}

func GetFees(db *sql.DB, filter FeeFilter) ([]*models.Fee, error) {
	query := `SELECT f.id, f.student_id, f.amount, f.status, f.paid_on, f.due_date, f.note, f.created_at,
			  s.name, COALESCE(c.name, ''), c.section
			  FROM fees f
			  JOIN students s ON s.id = f.student_id
			  LEFT JOIN classes c ON c.id = s.class_id
			  WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filter.ClassID != "" {
		argCount++
		query += fmt.Sprintf(" AND s.class_id = $%d", argCount)
		args = append(args, filter.ClassID)
	}
	if filter.Status != "" {
		argCount++
		query += fmt.Sprintf(" AND f.status = $%d", argCount)
		args = append(args, filter.Status)
	}
	if filter.FromDate != nil {
		argCount++
		query += fmt.Sprintf(" AND f.created_at >= $%d", argCount)
		args = append(args, *filter.FromDate)
	}
	if filter.ToDate != nil {
		argCount++
		query += fmt.Sprintf(" AND f.created_at < $%d + INTERVAL '1 day'", argCount)
		args = append(args, *filter.ToDate)
	}

	query += " ORDER BY f.created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		fee := &models.Fee{}
		err := rows.Scan(
			&fee.ID, &fee.StudentID, &fee.Amount, &fee.Status, &fee.PaidOn,
			&fee.DueDate, &fee.Note, &fee.CreatedAt,
			&fee.StudentName, &fee.ClassName, &fee.Section,
		)
		if err != nil {
			continue
		}
		fees = append(fees, fee)
	}

	if fees == nil {
		fees = []*models.Fee{}
	}
	return fees, nil
}

func GetFeeByID(db *sql.DB, feeID string) (*models.Fee, error) {
	fee := &models.Fee{}
	query := `SELECT f.id, f.student_id, f.amount, f.status, f.paid_on, f.due_date, f.note, f.created_at,
			  s.name, COALESCE(c.name, ''), c.section
			  FROM fees f
			  JOIN students s ON s.id = f.student_id
			  LEFT JOIN classes c ON c.id = s.class_id
			  WHERE f.id = $1`

	err := db.QueryRow(query, feeID).Scan(
		&fee.ID, &fee.StudentID, &fee.Amount, &fee.Status, &fee.PaidOn,
		&fee.DueDate, &fee.Note, &fee.CreatedAt,
		&fee.StudentName, &fee.ClassName, &fee.Section,
	)
	if err != nil {
		return nil, err
	}
	return fee, nil
}

func CreateFee(db *sql.DB, fee *models.Fee) error {
	query := `INSERT INTO fees (student_id, amount, status, paid_on, due_date, note)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		fee.StudentID, fee.Amount, fee.Status, fee.PaidOn, fee.DueDate, fee.Note,
	).Scan(&fee.ID, &fee.CreatedAt)
}

// MarkFeePaid flips a fee to paid with the given payment date. Marking an
// already-paid fee again leaves it paid.
func MarkFeePaid(db *sql.DB, feeID string, paidOn time.Time) error {
	query := `UPDATE fees SET status = 'paid', paid_on = $1 WHERE id = $2`

	result, err := db.Exec(query, paidOn, feeID)
	if err != nil {
		return fmt.Errorf("failed to mark fee paid: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteFee(db *sql.DB, feeID string) error {
	result, err := db.Exec(`DELETE FROM fees WHERE id = $1`, feeID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetFeeStats aggregates the numbers shown on the fees dashboard.
func GetFeeStats(db *sql.DB) (*models.FeeStats, error) {
	stats := &models.FeeStats{}

	query := `SELECT
			  (SELECT COUNT(*) FROM students),
			  COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
			  COALESCE(SUM(CASE WHEN status = 'unpaid' THEN amount ELSE 0 END), 0),
			  COUNT(*) FILTER (WHERE status = 'unpaid')
			  FROM fees`

	err := db.QueryRow(query).Scan(
		&stats.TotalStudents, &stats.TotalCollected, &stats.TotalPending, &stats.PendingRecords,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func collectStudentDues(rows *sql.Rows) []*models.StudentDue {
	var dues []*models.StudentDue
	for rows.Next() {
		due := &models.StudentDue{}
		err := rows.Scan(
			&due.StudentID, &due.StudentName, &due.ClassName, &due.Email,
			&due.TotalDue, &due.Invoices,
		)
		if err != nil {
			continue
		}
		dues = append(dues, due)
	}

	if dues == nil {
		dues = []*models.StudentDue{}
	}
	return dues
}

// GetStudentDues groups unpaid fees by student. Students with nothing owed
// are excluded; a class id narrows the rollup to that class.
func GetStudentDues(db *sql.DB, classID string) ([]*models.StudentDue, error) {
	query := `SELECT s.id, s.name, COALESCE(c.name, ''), s.email,
			  SUM(f.amount), COUNT(f.id)
			  FROM fees f
			  JOIN students s ON s.id = f.student_id
			  LEFT JOIN classes c ON c.id = s.class_id
			  WHERE f.status = 'unpaid'`
	args := []interface{}{}

	if classID != "" {
		query += ` AND s.class_id = $1`
		args = append(args, classID)
	}

	query += `
			  GROUP BY s.id, s.name, c.name, s.email
			  HAVING SUM(f.amount) > 0
			  ORDER BY SUM(f.amount) DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudentDues(rows), nil
}

// GetOutstandingFees lists unpaid rollups grouped by student, ordered by
// class then name, for the outstanding report.
func GetOutstandingFees(db *sql.DB) ([]*models.StudentDue, error) {
	query := `SELECT s.id, s.name, COALESCE(c.name, ''), s.email,
			  SUM(f.amount), COUNT(f.id)
			  FROM fees f
			  JOIN students s ON s.id = f.student_id
			  LEFT JOIN classes c ON c.id = s.class_id
			  WHERE f.status = 'unpaid'
			  GROUP BY s.id, s.name, c.name, s.email
			  ORDER BY c.name, s.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudentDues(rows), nil
}

// GetDuesForStudents rolls up unpaid totals per student, for the parent
// fees view.
func GetDuesForStudents(db *sql.DB, studentIDs []string) ([]*models.StudentDue, error) {
	if len(studentIDs) == 0 {
		return []*models.StudentDue{}, nil
	}

	query := `SELECT s.id, s.name, COALESCE(c.name, ''), s.email,
			  SUM(f.amount), COUNT(f.id)
			  FROM fees f
			  JOIN students s ON s.id = f.student_id
			  LEFT JOIN classes c ON c.id = s.class_id
			  WHERE f.status = 'unpaid' AND f.student_id = ANY($1)
			  GROUP BY s.id, s.name, c.name, s.email
			  ORDER BY s.name`

	rows, err := db.Query(query, pq.Array(studentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudentDues(rows), nil
}

// GetFeeReportSummary totals paid and unpaid amounts plus the record count,
// optionally narrowed by class and by month (YYYY-MM).
func GetFeeReportSummary(db *sql.DB, classID, month string) (*models.FeeSummary, error) {
	query := `SELECT
			  COALESCE(SUM(CASE WHEN f.status = 'paid' THEN f.amount ELSE 0 END), 0),
			  COALESCE(SUM(CASE WHEN f.status = 'unpaid' THEN f.amount ELSE 0 END), 0),
			  COUNT(*)
			  FROM fees f
			  JOIN students s ON s.id = f.student_id
			  WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if classID != "" {
		argCount++
		query += fmt.Sprintf(" AND s.class_id = $%d", argCount)
		args = append(args, classID)
	}
	if month != "" {
		argCount++
		query += fmt.Sprintf(" AND to_char(f.created_at, 'YYYY-MM') = $%d", argCount)
		args = append(args, month)
	}

	summary := &models.FeeSummary{}
	err := db.QueryRow(query, args...).Scan(
		&summary.TotalPaid, &summary.TotalUnpaid, &summary.TotalRecords,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// GetStudentFeeSummary totals a single student's paid and unpaid fees.
func GetStudentFeeSummary(db *sql.DB, studentID string) (*models.FeeSummary, error) {
	summary := &models.FeeSummary{}

	query := `SELECT
			  COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
			  COALESCE(SUM(CASE WHEN status = 'unpaid' THEN amount ELSE 0 END), 0),
			  COUNT(*)
			  FROM fees WHERE student_id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&summary.TotalPaid, &summary.TotalUnpaid, &summary.TotalRecords,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// GetStudentFees lists one student's fee records, newest first.
func GetStudentFees(db *sql.DB, studentID string) ([]*models.Fee, error) {
	query := `SELECT id, student_id, amount, status, paid_on, due_date, note, created_at
			  FROM fees
			  WHERE student_id = $1
			  ORDER BY created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		fee := &models.Fee{}
		err := rows.Scan(
			&fee.ID, &fee.StudentID, &fee.Amount, &fee.Status, &fee.PaidOn,
			&fee.DueDate, &fee.Note, &fee.CreatedAt,
		)
		if err != nil {
			continue
		}
		fees = append(fees, fee)
	}

	if fees == nil {
		fees = []*models.Fee{}
	}
	return fees, nil
}

// GetFeesForStudents lists fees across a set of students, used by the
// parent view.
func GetFeesForStudents(db *sql.DB, studentIDs []string) ([]*models.Fee, error) {
	if len(studentIDs) == 0 {
		return []*models.Fee{}, nil
	}

	query := `SELECT f.id, f.student_id, f.amount, f.status, f.paid_on, f.due_date, f.note, f.created_at,
			  s.name, COALESCE(c.name, ''), c.section
			  FROM fees f
			  JOIN students s ON s.id = f.student_id
			  LEFT JOIN classes c ON c.id = s.class_id
			  WHERE f.student_id = ANY($1)
			  ORDER BY f.created_at DESC`

	rows, err := db.Query(query, pq.Array(studentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		fee := &models.Fee{}
		err := rows.Scan(
			&fee.ID, &fee.StudentID, &fee.Amount, &fee.Status, &fee.PaidOn,
			&fee.DueDate, &fee.Note, &fee.CreatedAt,
			&fee.StudentName, &fee.ClassName, &fee.Section,
		)
		if err != nil {
			continue
		}
		fees = append(fees, fee)
	}

	if fees == nil {
		fees = []*models.Fee{}
	}
	return fees, nil
}
