package database

import (
	"database/sql"

	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a Postgres unique constraint
// failure.
func IsUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

func scanStudent(row interface{ Scan(...interface{}) error }, student *models.Student) error {
	return row.Scan(
		&student.ID, &student.Name, &student.ClassID, &student.DateOfBirth,
		&student.Phone, &student.Email, &student.ParentName, &student.ParentPhone,
		&student.Address, &student.Photo, &student.UserID,
		&student.CreatedAt, &student.UpdatedAt,
	)
}

const studentColumns = `s.id, s.name, s.class_id, s.date_of_birth, s.phone, s.email,
	s.parent_name, s.parent_phone, s.address, s.photo, s.user_id, s.created_at, s.updated_at`

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + `, c.name, c.section
			  FROM students s
			  LEFT JOIN classes c ON s.class_id = c.id
			  ORDER BY s.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		var className, section *string
		err := rows.Scan(
			&student.ID, &student.Name, &student.ClassID, &student.DateOfBirth,
			&student.Phone, &student.Email, &student.ParentName, &student.ParentPhone,
			&student.Address, &student.Photo, &student.UserID,
			&student.CreatedAt, &student.UpdatedAt, &className, &section,
		)
		if err != nil {
			continue
		}
		if className != nil && student.ClassID != nil {
			student.Class = &models.Class{ID: *student.ClassID, Name: *className, Section: section}
		}
		students = append(students, student)
	}

	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	student := &models.Student{}
	var className, section *string

	query := `SELECT ` + studentColumns + `, c.name, c.section
			  FROM students s
			  LEFT JOIN classes c ON s.class_id = c.id
			  WHERE s.id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.Name, &student.ClassID, &student.DateOfBirth,
		&student.Phone, &student.Email, &student.ParentName, &student.ParentPhone,
		&student.Address, &student.Photo, &student.UserID,
		&student.CreatedAt, &student.UpdatedAt, &className, &section,
	)
	if err != nil {
		return nil, err
	}
	if className != nil && student.ClassID != nil {
		student.Class = &models.Class{ID: *student.ClassID, Name: *className, Section: section}
	}
	return student, nil
}

func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + `
			  FROM students s
			  WHERE s.class_id = $1
			  ORDER BY s.name`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := scanStudent(rows, student); err != nil {
			continue
		}
		students = append(students, student)
	}

	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students
			  (name, class_id, date_of_birth, phone, email, parent_name, parent_phone, address, photo, user_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		student.Name, student.ClassID, student.DateOfBirth, student.Phone, student.Email,
		student.ParentName, student.ParentPhone, student.Address, student.Photo, student.UserID,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET name = $1, class_id = $2, date_of_birth = $3, phone = $4, email = $5,
			      parent_name = $6, parent_phone = $7, address = $8, updated_at = NOW()
			  WHERE id = $9`

	result, err := db.Exec(query,
		student.Name, student.ClassID, student.DateOfBirth, student.Phone, student.Email,
		student.ParentName, student.ParentPhone, student.Address, student.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStudentPhoto stores the generated photo filename and returns the
// previous one so the handler can remove the old file.
func UpdateStudentPhoto(db *sql.DB, studentID, photo string) (oldPhoto *string, err error) {
	err = db.QueryRow(`SELECT photo FROM students WHERE id = $1`, studentID).Scan(&oldPhoto)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`UPDATE students SET photo = $1, updated_at = NOW() WHERE id = $2`, photo, studentID)
	return oldPhoto, err
}

// DeleteStudent removes the student row and returns the stored photo
// filename, if any, for cleanup.
func DeleteStudent(db *sql.DB, studentID string) (*string, error) {
	var photo *string
	err := db.QueryRow(`SELECT photo FROM students WHERE id = $1`, studentID).Scan(&photo)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID); err != nil {
		return nil, err
	}
	return photo, nil
}

// LinkStudentUser attaches a login account to a student record. The user_id
// column is unique, so an account already linked to another student fails
// with a unique violation.
func LinkStudentUser(db *sql.DB, studentID, userID string) error {
	result, err := db.Exec(
		`UPDATE students SET user_id = $1, updated_at = NOW() WHERE id = $2`,
		userID, studentID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// LinkParentStudent associates a parent user with a student. Re-linking the
// same pair is a no-op.
func LinkParentStudent(db *sql.DB, parentUserID, studentID string) error {
	query := `INSERT INTO parent_students (parent_user_id, student_id)
			  VALUES ($1, $2)
			  ON CONFLICT (parent_user_id, student_id) DO NOTHING`
	_, err := db.Exec(query, parentUserID, studentID)
	return err
}

// GetParentStudents returns the students linked to a parent user account.
func GetParentStudents(db *sql.DB, parentUserID string) ([]*models.Student, error) {
	query := `SELECT s.id, s.name, s.class_id, c.name, c.section
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

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		var className, section *string
		if err := rows.Scan(&student.ID, &student.Name, &student.ClassID, &className, &section); err != nil {
			continue
		}
		if className != nil && student.ClassID != nil {
			student.Class = &models.Class{ID: *student.ClassID, Name: *className, Section: section}
		}
		students = append(students, student)
	}

	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

// ParentOwnsStudent reports whether a student is linked to the parent user.
func ParentOwnsStudent(db *sql.DB, parentUserID, studentID string) (bool, error) {
	var one int
	err := db.QueryRow(
		`SELECT 1 FROM parent_students WHERE parent_user_id = $1 AND student_id = $2`,
		parentUserID, studentID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetParentUsers lists user accounts with the parent role, for the link form.
func GetParentUsers(db *sql.DB) ([]*models.User, error) {
	rows, err := db.Query(`SELECT id, username, role, created_at FROM users WHERE role = 'parent' ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Role, &user.CreatedAt); err != nil {
			continue
		}
		users = append(users, user)
	}

	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}
