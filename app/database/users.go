package database

import (
	"database/sql"
	"fmt"

	"github.com/LUCY-sama29/school-erp/app/models"
)

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password, role, created_at, updated_at
			  FROM users WHERE username = $1`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password, role, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UsernameExists reports whether a username is already taken.
func UsernameExists(db *sql.DB, username string) (bool, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (username, password, role, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, user.Username, user.Password, user.Role).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
}

func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, username, role, created_at FROM users ORDER BY created_at DESC`

	rows, err := db.Query(query)
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

// UpdateUser updates username and role. Role changes are an admin-only edit;
// the handler enforces that.
func UpdateUser(db *sql.DB, userID, username string, role models.Role) error {
	query := `UPDATE users SET username = $1, role = $2, updated_at = NOW() WHERE id = $3`

	result, err := db.Exec(query, username, role, userID)
	if err != nil {
		return fmt.Errorf("failed to update user: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteUser(db *sql.DB, userID string) error {
	_, err := db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// GetLinkedStudentID resolves the student record linked to a student-role
// user account. Returns sql.ErrNoRows when no link exists.
func GetLinkedStudentID(db *sql.DB, userID string) (string, error) {
	var studentID string
	err := db.QueryRow(`SELECT id FROM students WHERE user_id = $1`, userID).Scan(&studentID)
	if err != nil {
		return "", err
	}
	return studentID, nil
}
