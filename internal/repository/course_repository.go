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

// CourseRepository stores the course catalog.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a course. courseCode is unique.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO courses (id, course_code, course_title, basket, credits, created_at) VALUES (:id, :course_code, :course_title, :basket, :credits, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// FindByCode loads a course by its code.
func (r *CourseRepository) FindByCode(ctx context.Context, courseCode string) (*models.Course, error) {
	const query = `SELECT id, course_code, course_title, basket, credits, created_at FROM courses WHERE course_code = $1 LIMIT 1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, courseCode); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find course by code: %w", err)
	}
	return &course, nil
}
