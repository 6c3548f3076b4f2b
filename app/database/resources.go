package database

import (
	"database/sql"

	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/lib/pq"
)

func CreateNotice(db *sql.DB, notice *models.Notice) error {
	query := `INSERT INTO notices (title, message, class_id, created_by)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		notice.Title, notice.Message, notice.ClassID, notice.CreatedBy,
	).Scan(&notice.ID, &notice.CreatedAt)
}

// GetNoticesForClass lists notices targeted at a class plus school-wide
// ones (null class), newest first.
func GetNoticesForClass(db *sql.DB, classID *string) ([]*models.Notice, error) {
	query := `SELECT n.id, n.title, n.message, n.class_id, COALESCE(n.created_by::text, ''), n.created_at, c.name
			  FROM notices n
			  LEFT JOIN classes c ON c.id = n.class_id
			  WHERE n.class_id IS NULL`
	args := []interface{}{}
	if classID != nil {
		query += ` OR n.class_id = $1`
		args = append(args, *classID)
	}
	query += ` ORDER BY n.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotices(rows)
}

func GetAllNotices(db *sql.DB) ([]*models.Notice, error) {
	query := `SELECT n.id, n.title, n.message, n.class_id, COALESCE(n.created_by::text, ''), n.created_at, c.name
			  FROM notices n
			  LEFT JOIN classes c ON c.id = n.class_id
			  ORDER BY n.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotices(rows)
}

func scanNotices(rows *sql.Rows) ([]*models.Notice, error) {
	var notices []*models.Notice
	for rows.Next() {
		notice := &models.Notice{}
		err := rows.Scan(
			&notice.ID, &notice.Title, &notice.Message, &notice.ClassID,
			&notice.CreatedBy, &notice.CreatedAt, &notice.ClassName,
		)
		if err != nil {
			continue
		}
		notices = append(notices, notice)
	}

	if notices == nil {
		notices = []*models.Notice{}
	}
	return notices, nil
}

func DeleteNotice(db *sql.DB, noticeID string) error {
	result, err := db.Exec(`DELETE FROM notices WHERE id = $1`, noticeID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func CreateHomework(db *sql.DB, homework *models.Homework) error {
	query := `INSERT INTO homework (title, description, class_id, due_date, created_by)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		homework.Title, homework.Description, homework.ClassID,
		homework.DueDate, homework.CreatedBy,
	).Scan(&homework.ID, &homework.CreatedAt)
}

func GetAllHomework(db *sql.DB) ([]*models.Homework, error) {
	query := `SELECT h.id, h.title, h.description, h.class_id, h.due_date, COALESCE(h.created_by::text, ''), h.created_at, c.name
			  FROM homework h
			  JOIN classes c ON c.id = h.class_id
			  ORDER BY h.due_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHomework(rows)
}

func GetHomeworkByClass(db *sql.DB, classID string) ([]*models.Homework, error) {
	query := `SELECT h.id, h.title, h.description, h.class_id, h.due_date, COALESCE(h.created_by::text, ''), h.created_at, c.name
			  FROM homework h
			  JOIN classes c ON c.id = h.class_id
			  WHERE h.class_id = $1
			  ORDER BY h.due_date DESC`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHomework(rows)
}

// GetHomeworkForStudents lists homework for the classes a set of students
// belong to, used by the parent view.
func GetHomeworkForStudents(db *sql.DB, studentIDs []string) ([]*models.Homework, error) {
	if len(studentIDs) == 0 {
		return []*models.Homework{}, nil
	}

	query := `SELECT DISTINCT h.id, h.title, h.description, h.class_id, h.due_date, COALESCE(h.created_by::text, ''), h.created_at, c.name
			  FROM homework h
			  JOIN classes c ON c.id = h.class_id
			  JOIN students s ON s.class_id = h.class_id
			  WHERE s.id = ANY($1)
			  ORDER BY h.due_date DESC`

	rows, err := db.Query(query, pq.Array(studentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHomework(rows)
}

func scanHomework(rows *sql.Rows) ([]*models.Homework, error) {
	var items []*models.Homework
	for rows.Next() {
		homework := &models.Homework{}
		err := rows.Scan(
			&homework.ID, &homework.Title, &homework.Description, &homework.ClassID,
			&homework.DueDate, &homework.CreatedBy, &homework.CreatedAt, &homework.ClassName,
		)
		if err != nil {
			continue
		}
		items = append(items, homework)
	}

	if items == nil {
		items = []*models.Homework{}
	}
	return items, nil
}

func DeleteHomework(db *sql.DB, homeworkID string) error {
	result, err := db.Exec(`DELETE FROM homework WHERE id = $1`, homeworkID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func CreateBook(db *sql.DB, book *models.Book) error {
	query := `INSERT INTO books (title, subject, description, class_id, file_path, uploaded_by)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, uploaded_at`

	return db.QueryRow(query,
		book.Title, book.Subject, book.Description, book.ClassID,
		book.FilePath, book.UploadedBy,
	).Scan(&book.ID, &book.UploadedAt)
}

func GetAllBooks(db *sql.DB) ([]*models.Book, error) {
	query := `SELECT b.id, b.title, b.subject, b.description, b.class_id, b.file_path, COALESCE(b.uploaded_by::text, ''), b.uploaded_at, c.name
			  FROM books b
			  JOIN classes c ON c.id = b.class_id
			  ORDER BY b.uploaded_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

func GetBooksByClass(db *sql.DB, classID string) ([]*models.Book, error) {
	query := `SELECT b.id, b.title, b.subject, b.description, b.class_id, b.file_path, COALESCE(b.uploaded_by::text, ''), b.uploaded_at, c.name
			  FROM books b
			  JOIN classes c ON c.id = b.class_id
			  WHERE b.class_id = $1
			  ORDER BY b.uploaded_at DESC`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

func scanBooks(rows *sql.Rows) ([]*models.Book, error) {
	var books []*models.Book
	for rows.Next() {
		book := &models.Book{}
		err := rows.Scan(
			&book.ID, &book.Title, &book.Subject, &book.Description, &book.ClassID,
			&book.FilePath, &book.UploadedBy, &book.UploadedAt, &book.ClassName,
		)
		if err != nil {
			continue
		}
		books = append(books, book)
	}

	if books == nil {
		books = []*models.Book{}
	}
	return books, nil
}

func GetBookByID(db *sql.DB, bookID string) (*models.Book, error) {
	book := &models.Book{}
	query := `SELECT b.id, b.title, b.subject, b.description, b.class_id, b.file_path, COALESCE(b.uploaded_by::text, ''), b.uploaded_at, c.name
			  FROM books b
			  JOIN classes c ON c.id = b.class_id
			  WHERE b.id = $1`

	err := db.QueryRow(query, bookID).Scan(
		&book.ID, &book.Title, &book.Subject, &book.Description, &book.ClassID,
		&book.FilePath, &book.UploadedBy, &book.UploadedAt, &book.ClassName,
	)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook removes the record and returns the stored file path for
// cleanup.
func DeleteBook(db *sql.DB, bookID string) (string, error) {
	var filePath string
	err := db.QueryRow(`SELECT file_path FROM books WHERE id = $1`, bookID).Scan(&filePath)
	if err != nil {
		return "", err
	}
	if _, err := db.Exec(`DELETE FROM books WHERE id = $1`, bookID); err != nil {
		return "", err
	}
	return filePath, nil
}
