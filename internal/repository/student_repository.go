package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
)

// StudentRepository provides database access for the student credential
// collection, which carries enrollment fields on top of the base identity.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new instance of StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByEmail returns the student identity by email. Only the base identity
// fields are selected; signin does not need the enrollment data.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	const query = `SELECT id, first_name, last_name, email, password_hash, created_at, updated_at FROM students WHERE email = $1 LIMIT 1`
	var identity models.Identity
	if err := r.db.GetContext(ctx, &identity, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by email: %w", err)
	}
	return &identity, nil
}

// FindByID returns the student identity by identifier.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Identity, error) {
	const query = `SELECT id, first_name, last_name, email, password_hash, created_at, updated_at FROM students WHERE id = $1 LIMIT 1`
	var identity models.Identity
	if err := r.db.GetContext(ctx, &identity, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by id: %w", err)
	}
	return &identity, nil
}

// ExistsByEmailOrStudentID is the best-effort duplicate pre-check. The
// unique constraints remain authoritative under concurrent signups.
func (r *StudentRepository) ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error) {
	const query = `SELECT 1 FROM students WHERE email = $1 OR student_id = $2 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, email, studentID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check student existence: %w", err)
	}
	return true, nil
}

// Create inserts a new student row.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now

	const query = `INSERT INTO students (id, first_name, last_name, email, password_hash, student_id, school, program, batch, graduation_level, created_at, updated_at) VALUES (:id, :first_name, :last_name, :email, :password_hash, :student_id, :school, :program, :batch, :graduation_level, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// UpdateProfile overwrites the name fields of a student.
func (r *StudentRepository) UpdateProfile(ctx context.Context, id, firstName, lastName string) error {
	const query = `UPDATE students SET first_name = $2, last_name = $3, updated_at = $4 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, firstName, lastName, time.Now().UTC()); err != nil {
		return fmt.Errorf("update student profile: %w", err)
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE students SET password_hash = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, passwordHash, time.Now().UTC()); err != nil {
		return fmt.Errorf("update student password: %w", err)
	}
	return nil
}
