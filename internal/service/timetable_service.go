package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
	"github.com/Yaswanth6303/Timetable-Project/pkg/export"
)

type masterTimetableStore interface {
	UpsertBatch(ctx context.Context, entries []models.MasterTimetableEntry) error
	Upsert(ctx context.Context, entry *models.MasterTimetableEntry) error
	ListJoined(ctx context.Context) ([]models.MasterTimetableRow, error)
}

type facultyScheduleStore interface {
	ListByFaculty(ctx context.Context, facultyID string) ([]models.FacultyTimetableRow, error)
}

type assignmentStore interface {
	ListByFaculty(ctx context.Context, facultyID string) ([]models.AssignedCourseRow, error)
}

type courseFinder interface {
	FindByCode(ctx context.Context, courseCode string) (*models.Course, error)
}

type roomFinder interface {
	FindByNumberAndBlock(ctx context.Context, roomNumber, blockNumber string) (*models.Room, error)
}

type facultyAccountFinder interface {
	FindByID(ctx context.Context, id string) (*models.Identity, error)
}

// spreadsheet column headers, matched case-sensitively against the first row.
var spreadsheetColumns = []string{
	"day", "timeSlot", "batch", "graduationLevel", "school", "program",
	"semester", "courseCode", "courseTitle", "block", "roomNumber", "roomType",
}

// TimetableService owns the master timetable and the per-faculty views over
// it: bulk spreadsheet import, manual entries, the joined listing, and the
// faculty-facing schedule and course queries.
type TimetableService struct {
	master    masterTimetableStore
	schedules facultyScheduleStore
	courses   assignmentStore
	catalog   courseFinder
	rooms     roomFinder
	faculty   facultyAccountFinder
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTimetableService constructs a TimetableService.
func NewTimetableService(
	master masterTimetableStore,
	schedules facultyScheduleStore,
	courses assignmentStore,
	catalog courseFinder,
	rooms roomFinder,
	faculty facultyAccountFinder,
	validate *validator.Validate,
	logger *zap.Logger,
) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TimetableService{
		master:    master,
		schedules: schedules,
		courses:   courses,
		catalog:   catalog,
		rooms:     rooms,
		faculty:   faculty,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		validator: validate,
		logger:    logger,
	}
}

// ImportFromSpreadsheet reads the first sheet of an xlsx workbook and
// upserts every data row into the master timetable, keyed on (day,
// timeSlot, batch, courseCode). Rows missing any key field fail the whole
// import; nothing is written in that case. Returns the number of rows
// imported.
func (s *TimetableService) ImportFromSpreadsheet(ctx context.Context, file io.Reader) (int, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrProcessing.Code, appErrors.ErrProcessing.Status, appErrors.ErrProcessing.Message)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return 0, appErrors.Clone(appErrors.ErrProcessing, appErrors.ErrProcessing.Message)
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrProcessing.Code, appErrors.ErrProcessing.Status, appErrors.ErrProcessing.Message)
	}
	if len(rows) < 2 {
		return 0, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columns[strings.TrimSpace(header)] = i
	}
	for _, required := range []string{"day", "timeSlot", "batch", "courseCode"} {
		if _, ok := columns[required]; !ok {
			err := fmt.Errorf("missing column %q", required)
			return 0, appErrors.Wrap(err, appErrors.ErrProcessing.Code, appErrors.ErrProcessing.Status, appErrors.ErrProcessing.Message)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	entries := make([]models.MasterTimetableEntry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		entry := models.MasterTimetableEntry{
			Day:             cell(row, "day"),
			TimeSlot:        cell(row, "timeSlot"),
			Batch:           cell(row, "batch"),
			GraduationLevel: cell(row, "graduationLevel"),
			School:          cell(row, "school"),
			Program:         cell(row, "program"),
			Semester:        cell(row, "semester"),
			CourseCode:      cell(row, "courseCode"),
			CourseTitle:     cell(row, "courseTitle"),
			Block:           cell(row, "block"),
			RoomNumber:      cell(row, "roomNumber"),
		}
		if roomType := cell(row, "roomType"); roomType != "" {
			entry.RoomType = &roomType
		}
		if entry.Day == "" || entry.TimeSlot == "" || entry.Batch == "" || entry.CourseCode == "" {
			err := fmt.Errorf("row %d missing upsert key fields", i+2)
			return 0, appErrors.Wrap(err, appErrors.ErrProcessing.Code, appErrors.ErrProcessing.Status, appErrors.ErrProcessing.Message)
		}
		entries = append(entries, entry)
	}

	if err := s.master.UpsertBatch(ctx, entries); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrProcessing.Code, appErrors.ErrProcessing.Status, appErrors.ErrProcessing.Message)
	}

	s.logger.Info("master timetable imported", zap.Int("rows", len(entries)))
	return len(entries), nil
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// AddManualEntry creates one master timetable row by hand. The course code,
// faculty account id and room must all resolve against existing records; a
// dangling reference rejects the request. The same (day, timeSlot, batch,
// courseCode) key as the bulk import applies, so re-submitting an existing
// slot overwrites it.
func (s *TimetableService) AddManualEntry(ctx context.Context, req models.ManualEntryRequest) (*models.MasterTimetableEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Validation Error")
	}

	course, err := s.catalog.FindByCode(ctx, req.CourseCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error adding timetable entry")
	}

	if _, err := s.faculty.FindByID(ctx, req.Faculty); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Faculty not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error adding timetable entry")
	}

	if _, err := s.rooms.FindByNumberAndBlock(ctx, req.Room, req.Block); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error adding timetable entry")
	}

	facultyID := req.Faculty
	entry := &models.MasterTimetableEntry{
		Day:             req.Day,
		TimeSlot:        req.TimeSlot,
		Batch:           req.Batch,
		GraduationLevel: req.GraduationLevel,
		School:          req.School,
		Program:         req.Program,
		Semester:        req.Semester,
		CourseCode:      course.CourseCode,
		CourseTitle:     course.CourseTitle,
		FacultyID:       &facultyID,
		RoomNumber:      req.Room,
		Block:           req.Block,
	}
	if err := s.master.Upsert(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error adding timetable entry")
	}
	return entry, nil
}

// MasterTimetable returns the joined master timetable grid. An empty
// timetable is a 200 with an empty list, not an error.
func (s *TimetableService) MasterTimetable(ctx context.Context) ([]models.MasterTimetableRow, error) {
	rows, err := s.master.ListJoined(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error retrieving master timetable")
	}
	if rows == nil {
		rows = []models.MasterTimetableRow{}
	}
	return rows, nil
}

// OwnTimetable returns a faculty member's schedule with the room type
// attached from the room catalog. A room that no longer resolves reads
// "Not specified" rather than failing the whole view.
func (s *TimetableService) OwnTimetable(ctx context.Context, facultyID string) ([]models.FacultyTimetableRow, error) {
	rows, err := s.schedules.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error retrieving timetable")
	}

	for i := range rows {
		rows[i].RoomType = "Not specified"
		room, err := s.rooms.FindByNumberAndBlock(ctx, rows[i].RoomNumber, rows[i].BlockNumber)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				s.logger.Warn("room lookup failed",
					zap.String("room_number", rows[i].RoomNumber),
					zap.String("block_number", rows[i].BlockNumber),
					zap.Error(err))
			}
			continue
		}
		if room.RoomType != "" {
			rows[i].RoomType = room.RoomType
		}
	}

	if rows == nil {
		rows = []models.FacultyTimetableRow{}
	}
	return rows, nil
}

// AssignedCourses returns the courses assigned to a faculty member. No
// assignments is a 404.
func (s *TimetableService) AssignedCourses(ctx context.Context, facultyID string) ([]models.AssignedCourseRow, error) {
	rows, err := s.courses.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "An error occurred while fetching assigned courses.")
	}
	if len(rows) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No courses assigned to this faculty member.")
	}
	return rows, nil
}

// ExportMasterTimetable renders the joined master timetable as a download.
// Supported formats are "csv" and "pdf"; the returned content type matches
// the format.
func (s *TimetableService) ExportMasterTimetable(ctx context.Context, format string) ([]byte, string, error) {
	rows, err := s.master.ListJoined(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error retrieving master timetable")
	}

	data := export.Dataset{
		Headers: []string{"Day", "Time Slot", "Batch", "Graduation Level", "School", "Program", "Semester", "Course Code", "Course Title", "Faculty", "Room", "Block", "Room Type"},
		Rows:    make([]map[string]string, 0, len(rows)),
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"Day":              row.Day,
			"Time Slot":        row.TimeSlot,
			"Batch":            row.Batch,
			"Graduation Level": row.GraduationLevel,
			"School":           row.School,
			"Program":          row.Program,
			"Semester":         row.Semester,
			"Course Code":      row.CourseCode,
			"Course Title":     row.CourseTitle,
			"Faculty":          row.FacultyName,
			"Room":             row.RoomNumber,
			"Block":            row.Block,
			"Room Type":        row.RoomType,
		})
	}

	switch strings.ToLower(format) {
	case "csv":
		payload, err := s.csv.Render(data)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error exporting master timetable")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := s.pdf.Render(data, "Master Timetable", "Day")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error exporting master timetable")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "Unsupported export format")
	}
}
