package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
)

// AssignmentRepository persists faculty-course assignments.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository creates a new assignment repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// ListByFaculty returns the courses assigned to a faculty member, expanded
// with the course title.
func (r *AssignmentRepository) ListByFaculty(ctx context.Context, facultyID string) ([]models.AssignedCourseRow, error) {
	const query = `
SELECT a.course_code,
       COALESCE(c.course_title, '') AS course_title,
       a.semester,
       a.batch,
       a.graduation_level,
       a.program,
       a.faculty_name
FROM faculty_courses a
LEFT JOIN courses c ON c.course_code = a.course_code
WHERE a.faculty_id = $1
ORDER BY a.semester ASC, a.course_code ASC`

	var rows []models.AssignedCourseRow
	if err := r.db.SelectContext(ctx, &rows, query, facultyID); err != nil {
		return nil, fmt.Errorf("list assigned courses: %w", err)
	}
	return rows, nil
}

// Create inserts an assignment row.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.FacultyCourseAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}

	const query = `INSERT INTO faculty_courses (id, faculty_id, course_code, semester, batch, graduation_level, program, faculty_name) VALUES (:id, :faculty_id, :course_code, :semester, :batch, :graduation_level, :program, :faculty_name)`
	if _, err := r.db.NamedExecContext(ctx, query, assignment); err != nil {
		return fmt.Errorf("create faculty course assignment: %w", err)
	}
	return nil
}
