package service

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
)

type mockMasterStore struct {
	batches   [][]models.MasterTimetableEntry
	upserted  []*models.MasterTimetableEntry
	listRows  []models.MasterTimetableRow
	batchErr  error
	upsertErr error
	listErr   error
}

func (m *mockMasterStore) UpsertBatch(ctx context.Context, entries []models.MasterTimetableEntry) error {
	if m.batchErr != nil {
		return m.batchErr
	}
	m.batches = append(m.batches, entries)
	return nil
}

func (m *mockMasterStore) Upsert(ctx context.Context, entry *models.MasterTimetableEntry) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, entry)
	return nil
}

func (m *mockMasterStore) ListJoined(ctx context.Context) ([]models.MasterTimetableRow, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listRows, nil
}

type mockScheduleStore struct {
	rows []models.FacultyTimetableRow
	err  error
}

func (m *mockScheduleStore) ListByFaculty(ctx context.Context, facultyID string) ([]models.FacultyTimetableRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

type mockAssignmentStore struct {
	rows []models.AssignedCourseRow
	err  error
}

func (m *mockAssignmentStore) ListByFaculty(ctx context.Context, facultyID string) ([]models.AssignedCourseRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

type mockCourseFinder struct {
	courses map[string]*models.Course
}

func (m *mockCourseFinder) FindByCode(ctx context.Context, courseCode string) (*models.Course, error) {
	course, ok := m.courses[courseCode]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return course, nil
}

type mockRoomFinder struct {
	rooms map[string]*models.Room
}

func roomKey(roomNumber, blockNumber string) string {
	return roomNumber + "/" + blockNumber
}

func (m *mockRoomFinder) FindByNumberAndBlock(ctx context.Context, roomNumber, blockNumber string) (*models.Room, error) {
	room, ok := m.rooms[roomKey(roomNumber, blockNumber)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return room, nil
}

type mockFacultyFinder struct {
	accounts map[string]*models.Identity
}

func (m *mockFacultyFinder) FindByID(ctx context.Context, id string) (*models.Identity, error) {
	account, ok := m.accounts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return account, nil
}

type timetableFixture struct {
	master    *mockMasterStore
	schedules *mockScheduleStore
	courses   *mockAssignmentStore
	catalog   *mockCourseFinder
	rooms     *mockRoomFinder
	faculty   *mockFacultyFinder
	svc       *TimetableService
}

func newTimetableFixture() *timetableFixture {
	f := &timetableFixture{
		master:    &mockMasterStore{},
		schedules: &mockScheduleStore{},
		courses:   &mockAssignmentStore{},
		catalog:   &mockCourseFinder{courses: make(map[string]*models.Course)},
		rooms:     &mockRoomFinder{rooms: make(map[string]*models.Room)},
		faculty:   &mockFacultyFinder{accounts: make(map[string]*models.Identity)},
	}
	f.svc = NewTimetableService(f.master, f.schedules, f.courses, f.catalog, f.rooms, f.faculty, nil, nil)
	return f
}

func buildWorkbook(t *testing.T, headers []string, dataRows [][]string) *bytes.Reader {
	t.Helper()
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, wb.SetCellValue(sheet, cell, header))
	}
	for r, row := range dataRows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			require.NoError(t, err)
			require.NoError(t, wb.SetCellValue(sheet, cell, value))
		}
	}
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

var importHeaders = []string{"day", "timeSlot", "batch", "graduationLevel", "school", "program", "semester", "courseCode", "courseTitle", "block", "roomNumber", "roomType"}

func TestImportFromSpreadsheet(t *testing.T) {
	f := newTimetableFixture()

	file := buildWorkbook(t, importHeaders, [][]string{
		{"Monday", "9:00 AM - 10:00 AM", "B1", "UG", "SoC", "B.Tech", "5", "CS301", "Operating Systems", "B", "204", "Lab"},
		{"Tuesday", "10:00 AM - 11:00 AM", "B1", "UG", "SoC", "B.Tech", "5", "CS302", "Databases", "A", "101", ""},
	})

	count, err := f.svc.ImportFromSpreadsheet(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, f.master.batches, 1)
	entries := f.master.batches[0]
	require.Len(t, entries, 2)

	assert.Equal(t, "Monday", entries[0].Day)
	assert.Equal(t, "CS301", entries[0].CourseCode)
	require.NotNil(t, entries[0].RoomType)
	assert.Equal(t, "Lab", *entries[0].RoomType)

	// spreadsheet rows carry no faculty reference, and an empty room type
	// stays unset rather than becoming an empty string
	assert.Nil(t, entries[0].FacultyID)
	assert.Nil(t, entries[1].RoomType)
}

func TestImportSkipsBlankRows(t *testing.T) {
	f := newTimetableFixture()

	file := buildWorkbook(t, importHeaders, [][]string{
		{"Monday", "9:00 AM - 10:00 AM", "B1", "UG", "SoC", "B.Tech", "5", "CS301", "Operating Systems", "B", "204", "Lab"},
		{"", "", "", "", "", "", "", "", "", "", "", ""},
	})

	count, err := f.svc.ImportFromSpreadsheet(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportMissingKeyColumnFails(t *testing.T) {
	f := newTimetableFixture()

	file := buildWorkbook(t, []string{"day", "timeSlot", "batch"}, [][]string{
		{"Monday", "9:00 AM - 10:00 AM", "B1"},
	})

	_, err := f.svc.ImportFromSpreadsheet(context.Background(), file)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 500, appErr.Status)
	assert.Equal(t, "Error processing Excel file", appErr.Message)
	assert.Empty(t, f.master.batches)
}

func TestImportRowMissingKeyFieldFails(t *testing.T) {
	f := newTimetableFixture()

	file := buildWorkbook(t, importHeaders, [][]string{
		{"Monday", "", "B1", "UG", "SoC", "B.Tech", "5", "CS301", "Operating Systems", "B", "204", ""},
	})

	_, err := f.svc.ImportFromSpreadsheet(context.Background(), file)
	require.Error(t, err)
	assert.Equal(t, "Error processing Excel file", appErrors.FromError(err).Message)
	assert.Empty(t, f.master.batches)
}

func TestImportRejectsNonWorkbook(t *testing.T) {
	f := newTimetableFixture()

	_, err := f.svc.ImportFromSpreadsheet(context.Background(), strings.NewReader("not an xlsx file"))
	require.Error(t, err)
	assert.Equal(t, 500, appErrors.FromError(err).Status)
}

func validManualEntry() models.ManualEntryRequest {
	return models.ManualEntryRequest{
		Day:             "Monday",
		TimeSlot:        "9:00 AM - 10:00 AM",
		Batch:           "B1",
		GraduationLevel: "UG",
		School:          "SoC",
		Program:         "B.Tech",
		Semester:        "5",
		CourseCode:      "CS301",
		Faculty:         "fac-1",
		Room:            "204",
		Block:           "B",
	}
}

func seedManualEntryRefs(f *timetableFixture) {
	f.catalog.courses["CS301"] = &models.Course{CourseCode: "CS301", CourseTitle: "Operating Systems"}
	f.faculty.accounts["fac-1"] = &models.Identity{ID: "fac-1", FirstName: "Ravi", LastName: "Kumar"}
	f.rooms.rooms[roomKey("204", "B")] = &models.Room{RoomNumber: "204", BlockNumber: "B", RoomType: "Lab"}
}

func TestAddManualEntry(t *testing.T) {
	f := newTimetableFixture()
	seedManualEntryRefs(f)

	entry, err := f.svc.AddManualEntry(context.Background(), validManualEntry())
	require.NoError(t, err)
	assert.Equal(t, "Operating Systems", entry.CourseTitle)
	require.NotNil(t, entry.FacultyID)
	assert.Equal(t, "fac-1", *entry.FacultyID)
	assert.Nil(t, entry.RoomType)
	require.Len(t, f.master.upserted, 1)
}

func TestAddManualEntryUnknownCourseRejected(t *testing.T) {
	f := newTimetableFixture()
	seedManualEntryRefs(f)
	delete(f.catalog.courses, "CS301")

	_, err := f.svc.AddManualEntry(context.Background(), validManualEntry())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Course not found", appErr.Message)
	assert.Empty(t, f.master.upserted)
}

func TestAddManualEntryUnknownFacultyRejected(t *testing.T) {
	f := newTimetableFixture()
	seedManualEntryRefs(f)
	delete(f.faculty.accounts, "fac-1")

	_, err := f.svc.AddManualEntry(context.Background(), validManualEntry())
	require.Error(t, err)
	assert.Equal(t, "Faculty not found", appErrors.FromError(err).Message)
}

func TestAddManualEntryUnknownRoomRejected(t *testing.T) {
	f := newTimetableFixture()
	seedManualEntryRefs(f)
	delete(f.rooms.rooms, roomKey("204", "B"))

	_, err := f.svc.AddManualEntry(context.Background(), validManualEntry())
	require.Error(t, err)
	assert.Equal(t, "Room not found", appErrors.FromError(err).Message)
}

func TestAddManualEntryInvalidDayRejected(t *testing.T) {
	f := newTimetableFixture()
	seedManualEntryRefs(f)

	req := validManualEntry()
	req.Day = "Funday"
	_, err := f.svc.AddManualEntry(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Validation Error", appErr.Message)
}

func TestMasterTimetableEmptyIsNotAnError(t *testing.T) {
	f := newTimetableFixture()

	rows, err := f.svc.MasterTimetable(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestOwnTimetableAttachesRoomType(t *testing.T) {
	f := newTimetableFixture()
	f.rooms.rooms[roomKey("204", "B")] = &models.Room{RoomNumber: "204", BlockNumber: "B", RoomType: "Lab"}
	f.schedules.rows = []models.FacultyTimetableRow{
		{Day: "Monday", TimeSlot: "9:00 AM - 10:00 AM", CourseCode: "CS301", RoomNumber: "204", BlockNumber: "B"},
		{Day: "Tuesday", TimeSlot: "10:00 AM - 11:00 AM", CourseCode: "CS302", RoomNumber: "999", BlockNumber: "Z"},
	}

	rows, err := f.svc.OwnTimetable(context.Background(), "fac-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Lab", rows[0].RoomType)
	assert.Equal(t, "Not specified", rows[1].RoomType)
}

func TestAssignedCoursesEmptyIsNotFound(t *testing.T) {
	f := newTimetableFixture()

	_, err := f.svc.AssignedCourses(context.Background(), "fac-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "No courses assigned to this faculty member.", appErr.Message)
}

func TestAssignedCourses(t *testing.T) {
	f := newTimetableFixture()
	f.courses.rows = []models.AssignedCourseRow{
		{CourseCode: "CS301", CourseTitle: "Operating Systems", Semester: "5", Batch: "B1"},
	}

	rows, err := f.svc.AssignedCourses(context.Background(), "fac-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS301", rows[0].CourseCode)
}

func TestExportMasterTimetableCSV(t *testing.T) {
	f := newTimetableFixture()
	f.master.listRows = []models.MasterTimetableRow{
		{Day: "Monday", TimeSlot: "9:00 AM - 10:00 AM", Batch: "B1", CourseCode: "CS301", CourseTitle: "Operating Systems", FacultyName: "Ravi Kumar", RoomNumber: "204", Block: "B", RoomType: "Lab"},
	}

	payload, contentType, err := f.svc.ExportMasterTimetable(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	text := string(payload)
	assert.Contains(t, text, "Day,Time Slot,Batch")
	assert.Contains(t, text, "CS301")
	assert.Contains(t, text, "Ravi Kumar")
}

func TestExportMasterTimetablePDF(t *testing.T) {
	f := newTimetableFixture()
	f.master.listRows = []models.MasterTimetableRow{
		{Day: "Monday", TimeSlot: "9:00 AM - 10:00 AM", Batch: "B1", CourseCode: "CS301", CourseTitle: "Operating Systems", RoomNumber: "204", Block: "B", RoomType: "Lab"},
	}

	payload, contentType, err := f.svc.ExportMasterTimetable(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestExportMasterTimetableUnknownFormat(t *testing.T) {
	f := newTimetableFixture()

	_, _, err := f.svc.ExportMasterTimetable(context.Background(), "xml")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Unsupported export format", appErr.Message)
}
