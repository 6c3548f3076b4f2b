package database

import (
	"database/sql"
	"log"
)

// RunMigrations bootstraps the schema. Statements are idempotent so the
// application can be pointed at a fresh database.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			section TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (name, section)
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			class_id UUID REFERENCES classes(id),
			date_of_birth DATE,
			phone TEXT,
			email TEXT,
			parent_name TEXT,
			parent_phone TEXT,
			address TEXT,
			photo TEXT,
			user_id UUID UNIQUE REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			class_id UUID REFERENCES classes(id),
			date DATE NOT NULL,
			status TEXT NOT NULL,
			remarks TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, date)
		)`,

		`CREATE TABLE IF NOT EXISTS assignments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			class_id UUID NOT NULL REFERENCES classes(id),
			due_date DATE,
			created_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS assignment_submissions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assignment_id UUID NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			submission_text TEXT NOT NULL DEFAULT '',
			marks NUMERIC(6,2),
			remarks TEXT,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			graded_at TIMESTAMPTZ,
			UNIQUE (assignment_id, student_id)
		)`,

		`CREATE TABLE IF NOT EXISTS marks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			subject TEXT NOT NULL,
			marks NUMERIC(6,2) NOT NULL,
			max_marks NUMERIC(6,2) NOT NULL,
			exam TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS fees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			amount NUMERIC(10,2) NOT NULL CHECK (amount >= 0),
			status TEXT NOT NULL DEFAULT 'unpaid',
			paid_on DATE,
			due_date DATE,
			note TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS notices (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			class_id UUID REFERENCES classes(id),
			created_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS homework (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			class_id UUID NOT NULL REFERENCES classes(id),
			due_date DATE NOT NULL,
			created_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS books (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			subject TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			class_id UUID NOT NULL REFERENCES classes(id),
			file_path TEXT NOT NULL,
			uploaded_by UUID REFERENCES users(id),
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS parent_students (
			parent_user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (parent_user_id, student_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_student ON fees(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_marks_student_exam ON marks(student_id, exam)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
