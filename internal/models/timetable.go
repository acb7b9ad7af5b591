package models

import "time"

// Weekdays accepted for timetable entries, also the grid ordering.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MasterTimetableEntry is one canonical schedule row. Course, faculty and
// room are referenced by their natural keys (course code, directory faculty
// id, room number + block); the upsert key is (day, timeSlot, batch,
// courseCode). Spreadsheet rows carry no faculty column and manual entries
// carry no room type, so both columns are nullable.
type MasterTimetableEntry struct {
	ID              string    `db:"id" json:"id"`
	Day             string    `db:"day" json:"day"`
	TimeSlot        string    `db:"time_slot" json:"timeSlot"`
	Batch           string    `db:"batch" json:"batch"`
	GraduationLevel string    `db:"graduation_level" json:"graduationLevel"`
	School          string    `db:"school" json:"school"`
	Program         string    `db:"program" json:"program"`
	Semester        string    `db:"semester" json:"semester"`
	CourseCode      string    `db:"course_code" json:"courseCode"`
	CourseTitle     string    `db:"course_title" json:"courseTitle"`
	FacultyID       *string   `db:"faculty_id" json:"facultyId,omitempty"`
	RoomNumber      string    `db:"room_number" json:"roomNumber"`
	Block           string    `db:"block" json:"block"`
	RoomType        *string   `db:"room_type" json:"roomType,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// MasterTimetableRow is the denormalized listing shape: stored fields
// expanded with catalog display data where the references resolve.
type MasterTimetableRow struct {
	Day             string `db:"day" json:"day"`
	TimeSlot        string `db:"time_slot" json:"timeSlot"`
	Batch           string `db:"batch" json:"batch"`
	GraduationLevel string `db:"graduation_level" json:"graduationLevel"`
	School          string `db:"school" json:"school"`
	Program         string `db:"program" json:"program"`
	Semester        string `db:"semester" json:"semester"`
	CourseCode      string `db:"course_code" json:"courseCode"`
	CourseTitle     string `db:"course_title" json:"courseTitle"`
	FacultyName     string `db:"faculty_name" json:"facultyName"`
	RoomNumber      string `db:"room_number" json:"roomNumber"`
	Block           string `db:"block" json:"block"`
	RoomType        string `db:"room_type" json:"roomType"`
}

// FacultyTimetableEntry is one per-faculty schedule row. daySort/hourSort
// are denormalized ordering keys written at insert time.
type FacultyTimetableEntry struct {
	ID          string `db:"id" json:"id"`
	Day         string `db:"day" json:"day"`
	TimeSlot    string `db:"time_slot" json:"timeSlot"`
	FacultyID   string `db:"faculty_id" json:"facultyId"`
	CourseCode  string `db:"course_code" json:"courseCode"`
	RoomNumber  string `db:"room_number" json:"roomNumber"`
	BlockNumber string `db:"block_number" json:"blockNumber"`
	DaySort     int    `db:"day_sort" json:"daySort"`
	HourSort    int    `db:"hour_sort" json:"hourSort"`
}

// FacultyTimetableRow is the composed per-faculty view. RoomType comes from
// a secondary lookup against rooms by (roomNumber, blockNumber) and defaults
// to "Not specified" when no room matches.
type FacultyTimetableRow struct {
	Day         string `db:"day" json:"day"`
	TimeSlot    string `db:"time_slot" json:"timeSlot"`
	CourseCode  string `db:"course_code" json:"courseCode"`
	CourseTitle string `db:"course_title" json:"courseTitle"`
	FacultyName string `db:"faculty_name" json:"facultyName"`
	RoomNumber  string `db:"room_number" json:"roomNumber"`
	BlockNumber string `db:"block_number" json:"block"`
	RoomType    string `json:"roomType"`
}

// FacultyCourseAssignment links a faculty member to a course they teach.
type FacultyCourseAssignment struct {
	ID              string `db:"id" json:"id"`
	FacultyID       string `db:"faculty_id" json:"facultyId"`
	CourseCode      string `db:"course_code" json:"courseCode"`
	Semester        string `db:"semester" json:"semester"`
	Batch           string `db:"batch" json:"batch"`
	GraduationLevel string `db:"graduation_level" json:"graduationLevel"`
	Program         string `db:"program" json:"program"`
	FacultyName     string `db:"faculty_name" json:"facultyName"`
}

// AssignedCourseRow is an assignment expanded with the course title.
type AssignedCourseRow struct {
	CourseCode      string `db:"course_code" json:"courseCode"`
	CourseTitle     string `db:"course_title" json:"courseTitle"`
	Semester        string `db:"semester" json:"semester"`
	Batch           string `db:"batch" json:"batch"`
	GraduationLevel string `db:"graduation_level" json:"graduationLevel"`
	Program         string `db:"program" json:"program"`
	FacultyName     string `db:"faculty_name" json:"facultyName"`
}

// ManualEntryRequest creates one master timetable row by hand. References
// must resolve against the catalog before the insert happens.
type ManualEntryRequest struct {
	Day             string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	TimeSlot        string `json:"timeSlot" validate:"required"`
	Batch           string `json:"batch" validate:"required"`
	GraduationLevel string `json:"graduationLevel" validate:"required,oneof=UG PG"`
	School          string `json:"school" validate:"required"`
	Program         string `json:"program" validate:"required"`
	Semester        string `json:"semester" validate:"required"`
	CourseCode      string `json:"courseCode" validate:"required"`
	Faculty         string `json:"faculty" validate:"required"`
	Room            string `json:"room" validate:"required"`
	Block           string `json:"block" validate:"required"`
}
