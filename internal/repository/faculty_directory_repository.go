package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
)

// FacultyDirectoryRepository stores the admin-maintained faculty directory.
type FacultyDirectoryRepository struct {
	db *sqlx.DB
}

// NewFacultyDirectoryRepository creates a new directory repository.
func NewFacultyDirectoryRepository(db *sqlx.DB) *FacultyDirectoryRepository {
	return &FacultyDirectoryRepository{db: db}
}

// Create inserts a directory entry. facultyId is unique.
func (r *FacultyDirectoryRepository) Create(ctx context.Context, entry *models.FacultyDirectoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO faculty_directory (id, faculty_id, faculty_name, school, created_at) VALUES (:id, :faculty_id, :faculty_name, :school, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create faculty directory entry: %w", err)
	}
	return nil
}
