package database

import (
	"database/sql"
	"fmt"

	"github.com/LUCY-sama29/school-erp/app/models"
)

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.section, c.created_at, c.updated_at,
			  COALESCE(s.student_count, 0) AS student_count
			  FROM classes c
			  LEFT JOIN (
				  SELECT class_id, COUNT(*) AS student_count
				  FROM students
				  GROUP BY class_id
			  ) s ON c.id = s.class_id
			  ORDER BY c.name, c.section`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(&class.ID, &class.Name, &class.Section, &class.CreatedAt, &class.UpdatedAt, &class.StudentCount)
		if err != nil {
			continue
		}
		classes = append(classes, class)
	}

	if classes == nil {
		classes = []*models.Class{}
	}
	return classes, nil
}

func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	class := &models.Class{}
	query := `SELECT id, name, section, created_at, updated_at FROM classes WHERE id = $1`

	err := db.QueryRow(query, classID).Scan(
		&class.ID, &class.Name, &class.Section, &class.CreatedAt, &class.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return class, nil
}

// CreateClass inserts a class. The (name, section) pair is unique; a
// duplicate surfaces as a constraint error for the handler to flash.
func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (name, section, created_at, updated_at)
			  VALUES ($1, $2, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, class.Name, class.Section).Scan(
		&class.ID, &class.CreatedAt, &class.UpdatedAt,
	)
}

func UpdateClass(db *sql.DB, class *models.Class) error {
	query := `UPDATE classes SET name = $1, section = $2, updated_at = NOW() WHERE id = $3`

	result, err := db.Exec(query, class.Name, class.Section, class.ID)
	if err != nil {
		return fmt.Errorf("failed to update class: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
