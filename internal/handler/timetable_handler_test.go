package handler

import (
	"bytes"
	"context"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	"github.com/Yaswanth6303/Timetable-Project/internal/service"
	"github.com/Yaswanth6303/Timetable-Project/pkg/config"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type memoryMasterStore struct {
	entries  []models.MasterTimetableEntry
	listRows []models.MasterTimetableRow
}

func (m *memoryMasterStore) UpsertBatch(ctx context.Context, entries []models.MasterTimetableEntry) error {
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *memoryMasterStore) Upsert(ctx context.Context, entry *models.MasterTimetableEntry) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memoryMasterStore) ListJoined(ctx context.Context) ([]models.MasterTimetableRow, error) {
	return m.listRows, nil
}

type memoryScheduleStore struct{}

func (memoryScheduleStore) ListByFaculty(ctx context.Context, facultyID string) ([]models.FacultyTimetableRow, error) {
	return nil, nil
}

type memoryAssignmentStore struct {
	rows []models.AssignedCourseRow
}

func (m *memoryAssignmentStore) ListByFaculty(ctx context.Context, facultyID string) ([]models.AssignedCourseRow, error) {
	return m.rows, nil
}

type memoryCourseFinder struct {
	courses map[string]*models.Course
}

func (m *memoryCourseFinder) FindByCode(ctx context.Context, courseCode string) (*models.Course, error) {
	if course, ok := m.courses[courseCode]; ok {
		return course, nil
	}
	return nil, sql.ErrNoRows
}

type memoryRoomFinder struct {
	rooms map[string]*models.Room
}

func (m *memoryRoomFinder) FindByNumberAndBlock(ctx context.Context, roomNumber, blockNumber string) (*models.Room, error) {
	if room, ok := m.rooms[roomNumber+"/"+blockNumber]; ok {
		return room, nil
	}
	return nil, sql.ErrNoRows
}

type memoryFacultyFinder struct {
	accounts map[string]*models.Identity
}

func (m *memoryFacultyFinder) FindByID(ctx context.Context, id string) (*models.Identity, error) {
	if account, ok := m.accounts[id]; ok {
		return account, nil
	}
	return nil, sql.ErrNoRows
}

func newTimetableRouter(master *memoryMasterStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewTimetableService(
		master,
		memoryScheduleStore{},
		&memoryAssignmentStore{},
		&memoryCourseFinder{courses: map[string]*models.Course{
			"CS301": {CourseCode: "CS301", CourseTitle: "Operating Systems"},
		}},
		&memoryRoomFinder{rooms: map[string]*models.Room{
			"204/B": {RoomNumber: "204", BlockNumber: "B", RoomType: "Lab"},
		}},
		&memoryFacultyFinder{accounts: map[string]*models.Identity{
			"fac-1": {ID: "fac-1", FirstName: "Ravi", LastName: "Kumar"},
		}},
		nil, nil,
	)
	h := NewTimetableHandler(svc, nil, config.ImportConfig{
		MaxFileSizeBytes: 5 * 1024 * 1024,
		AllowedMIMEs:     []string{xlsxMIME},
	})

	r := gin.New()
	r.POST("/admin/master-timetable/upload", h.Upload)
	r.POST("/admin/master-timetable/manual", h.ManualEntry)
	r.GET("/admin/master-timetable/export", h.Export)
	return r
}

func workbookBytes(t *testing.T) []byte {
	t.Helper()
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	headers := []string{"day", "timeSlot", "batch", "graduationLevel", "school", "program", "semester", "courseCode", "courseTitle", "block", "roomNumber", "roomType"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, wb.SetCellValue(sheet, cell, header))
	}
	row := []string{"Monday", "9:00 AM - 10:00 AM", "B1", "UG", "SoC", "B.Tech", "5", "CS301", "Operating Systems", "B", "204", "Lab"}
	for col, value := range row {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		require.NoError(t, err)
		require.NoError(t, wb.SetCellValue(sheet, cell, value))
	}
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func uploadRequest(t *testing.T, content []byte, contentType string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="timetable.xlsx"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/master-timetable/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImportsWorkbook(t *testing.T) {
	master := &memoryMasterStore{}
	r := newTimetableRouter(master)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, workbookBytes(t), xlsxMIME))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Master timetable updated successfully from Excel file")
	require.Len(t, master.entries, 1)
	assert.Equal(t, "CS301", master.entries[0].CourseCode)
}

func TestUploadRejectsWrongMIME(t *testing.T) {
	master := &memoryMasterStore{}
	r := newTimetableRouter(master)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, []byte("a,b,c"), "text/csv"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only .xlsx files are allowed")
	assert.Empty(t, master.entries)
}

func TestUploadRejectsMissingFile(t *testing.T) {
	r := newTimetableRouter(&memoryMasterStore{})

	req := httptest.NewRequest(http.MethodPost, "/admin/master-timetable/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadCorruptWorkbookReturns500(t *testing.T) {
	r := newTimetableRouter(&memoryMasterStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, []byte("not an xlsx"), xlsxMIME))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error processing Excel file")
}

func TestManualEntryEndpoint(t *testing.T) {
	master := &memoryMasterStore{}
	r := newTimetableRouter(master)

	w := postJSON(t, r, "/admin/master-timetable/manual", map[string]string{
		"day":             "Monday",
		"timeSlot":        "9:00 AM - 10:00 AM",
		"batch":           "B1",
		"graduationLevel": "UG",
		"school":          "SoC",
		"program":         "B.Tech",
		"semester":        "5",
		"courseCode":      "CS301",
		"faculty":         "fac-1",
		"room":            "204",
		"block":           "B",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "New timetable entry added successfully")
	require.Len(t, master.entries, 1)
	assert.Equal(t, "Operating Systems", master.entries[0].CourseTitle)
}

func TestManualEntryUnknownCourse(t *testing.T) {
	r := newTimetableRouter(&memoryMasterStore{})

	w := postJSON(t, r, "/admin/master-timetable/manual", map[string]string{
		"day":             "Monday",
		"timeSlot":        "9:00 AM - 10:00 AM",
		"batch":           "B1",
		"graduationLevel": "UG",
		"school":          "SoC",
		"program":         "B.Tech",
		"semester":        "5",
		"courseCode":      "NOPE",
		"faculty":         "fac-1",
		"room":            "204",
		"block":           "B",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Course not found")
}

func TestExportCSVEndpoint(t *testing.T) {
	master := &memoryMasterStore{listRows: []models.MasterTimetableRow{
		{Day: "Monday", TimeSlot: "9:00 AM - 10:00 AM", Batch: "B1", CourseCode: "CS301", CourseTitle: "Operating Systems", RoomNumber: "204", Block: "B", RoomType: "Lab"},
	}}
	r := newTimetableRouter(master)

	req := httptest.NewRequest(http.MethodGet, "/admin/master-timetable/export?format=csv", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "master-timetable.csv")
	assert.Contains(t, w.Body.String(), "CS301")
}

func TestExportUnknownFormat(t *testing.T) {
	r := newTimetableRouter(&memoryMasterStore{})

	req := httptest.NewRequest(http.MethodGet, "/admin/master-timetable/export?format=xml", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported export format")
}
