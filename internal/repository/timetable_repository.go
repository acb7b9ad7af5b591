package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
)

// TimetableRepository persists the master timetable.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository creates a new master timetable repository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

const upsertEntryQuery = `
INSERT INTO master_timetable (id, day, time_slot, batch, graduation_level, school, program, semester, course_code, course_title, faculty_id, room_number, block, room_type, created_at, updated_at)
VALUES (:id, :day, :time_slot, :batch, :graduation_level, :school, :program, :semester, :course_code, :course_title, :faculty_id, :room_number, :block, :room_type, :created_at, :updated_at)
ON CONFLICT (day, time_slot, batch, course_code) DO UPDATE
SET graduation_level = EXCLUDED.graduation_level,
    school = EXCLUDED.school,
    program = EXCLUDED.program,
    semester = EXCLUDED.semester,
    course_title = EXCLUDED.course_title,
    faculty_id = EXCLUDED.faculty_id,
    room_number = EXCLUDED.room_number,
    block = EXCLUDED.block,
    room_type = EXCLUDED.room_type,
    updated_at = EXCLUDED.updated_at`

// UpsertBatch inserts or overwrites entries keyed on (day, timeSlot, batch,
// courseCode), all within one transaction. Rows matching the key are fully
// overwritten with the new values; atomicity is per row, ordering within the
// batch is not guaranteed relative to concurrent single inserts.
func (r *TimetableRepository) UpsertBatch(ctx context.Context, entries []models.MasterTimetableEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin timetable upsert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	for i := range entries {
		entry := &entries[i]
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = now
		}
		entry.UpdatedAt = now

		if _, err = sqlx.NamedExecContext(ctx, tx, upsertEntryQuery, entry); err != nil {
			return fmt.Errorf("upsert timetable entry: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit timetable upsert: %w", err)
	}
	return nil
}

// Upsert writes a single entry with the same last-write-wins key semantics
// as the batch path.
func (r *TimetableRepository) Upsert(ctx context.Context, entry *models.MasterTimetableEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	if _, err := r.db.NamedExecContext(ctx, upsertEntryQuery, entry); err != nil {
		return fmt.Errorf("upsert timetable entry: %w", err)
	}
	return nil
}

// ListJoined returns every master timetable row expanded with the catalog
// display fields, ordered as a weekly grid. Unresolvable references fall
// back to the stored values; a missing room type reads "Not specified".
func (r *TimetableRepository) ListJoined(ctx context.Context) ([]models.MasterTimetableRow, error) {
	const query = `
SELECT m.day,
       m.time_slot,
       m.batch,
       m.graduation_level,
       m.school,
       m.program,
       m.semester,
       m.course_code,
       COALESCE(NULLIF(m.course_title, ''), c.course_title, '') AS course_title,
       COALESCE(f.first_name || ' ' || f.last_name, '') AS faculty_name,
       m.room_number,
       m.block,
       COALESCE(m.room_type, r.room_type, 'Not specified') AS room_type
FROM master_timetable m
LEFT JOIN courses c ON c.course_code = m.course_code
LEFT JOIN faculty_accounts f ON f.id = m.faculty_id
LEFT JOIN rooms r ON r.room_number = m.room_number AND r.block_number = m.block
ORDER BY CASE m.day
    WHEN 'Monday' THEN 1
    WHEN 'Tuesday' THEN 2
    WHEN 'Wednesday' THEN 3
    WHEN 'Thursday' THEN 4
    WHEN 'Friday' THEN 5
    WHEN 'Saturday' THEN 6
    ELSE 7 END,
    m.time_slot ASC, m.batch ASC`

	var rows []models.MasterTimetableRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list master timetable: %w", err)
	}
	return rows, nil
}
