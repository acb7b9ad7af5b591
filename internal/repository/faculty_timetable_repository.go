package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
)

// FacultyTimetableRepository persists per-faculty schedule rows.
type FacultyTimetableRepository struct {
	db *sqlx.DB
}

// NewFacultyTimetableRepository creates a new faculty timetable repository.
func NewFacultyTimetableRepository(db *sqlx.DB) *FacultyTimetableRepository {
	return &FacultyTimetableRepository{db: db}
}

// ListByFaculty returns a faculty member's rows expanded with the course
// code/title and directory name, ordered by the denormalized sort keys.
// Room type is attached by the caller through a secondary room lookup.
func (r *FacultyTimetableRepository) ListByFaculty(ctx context.Context, facultyID string) ([]models.FacultyTimetableRow, error) {
	const query = `
SELECT t.day,
       t.time_slot,
       t.course_code,
       COALESCE(c.course_title, '') AS course_title,
       COALESCE(f.first_name || ' ' || f.last_name, '') AS faculty_name,
       t.room_number,
       t.block_number
FROM faculty_timetable t
LEFT JOIN courses c ON c.course_code = t.course_code
LEFT JOIN faculty_accounts f ON f.id = t.faculty_id
WHERE t.faculty_id = $1
ORDER BY t.day_sort ASC, t.hour_sort ASC`

	var rows []models.FacultyTimetableRow
	if err := r.db.SelectContext(ctx, &rows, query, facultyID); err != nil {
		return nil, fmt.Errorf("list faculty timetable: %w", err)
	}
	return rows, nil
}

// Create inserts a faculty schedule row.
func (r *FacultyTimetableRepository) Create(ctx context.Context, entry *models.FacultyTimetableEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	const query = `INSERT INTO faculty_timetable (id, day, time_slot, faculty_id, course_code, room_number, block_number, day_sort, hour_sort) VALUES (:id, :day, :time_slot, :faculty_id, :course_code, :room_number, :block_number, :day_sort, :hour_sort)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create faculty timetable entry: %w", err)
	}
	return nil
}
