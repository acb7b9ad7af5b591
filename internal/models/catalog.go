package models

import "time"

// FacultyDirectoryEntry is admin-maintained reference data about a faculty
// member. It is distinct from the faculty login identity: the directory is
// keyed by an institutional facultyId code, the identity by email, and the
// source system never linked the two.
type FacultyDirectoryEntry struct {
	ID          string    `db:"id" json:"id"`
	FacultyID   string    `db:"faculty_id" json:"facultyId"`
	FacultyName string    `db:"faculty_name" json:"facultyName"`
	School      string    `db:"school" json:"school"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Course is a catalog entry keyed by its unique course code.
type Course struct {
	ID          string    `db:"id" json:"id"`
	CourseCode  string    `db:"course_code" json:"courseCode"`
	CourseTitle string    `db:"course_title" json:"courseTitle"`
	Basket      string    `db:"basket" json:"basket,omitempty"`
	Credits     float64   `db:"credits" json:"credits"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Room describes a physical room within a block.
type Room struct {
	ID          string    `db:"id" json:"id"`
	RoomNumber  string    `db:"room_number" json:"roomNumber"`
	BlockNumber string    `db:"block_number" json:"blockNumber"`
	RoomType    string    `db:"room_type" json:"roomType"`
	Capacity    int       `db:"capacity" json:"capacity"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// AddFacultyRequest creates a directory entry.
type AddFacultyRequest struct {
	FacultyID   string `json:"facultyId" validate:"required"`
	FacultyName string `json:"facultyName" validate:"required"`
	School      string `json:"school" validate:"required"`
}

// AddCourseRequest creates a course. Credits must be positive.
type AddCourseRequest struct {
	CourseCode  string  `json:"courseCode" validate:"required"`
	CourseTitle string  `json:"courseTitle" validate:"required"`
	Basket      string  `json:"basket"`
	Credits     float64 `json:"credits" validate:"required,gt=0"`
}

// AddRoomRequest creates a room. Capacity must be positive.
type AddRoomRequest struct {
	RoomNumber  string `json:"roomNumber" validate:"required"`
	BlockNumber string `json:"block" validate:"required"`
	RoomType    string `json:"roomType" validate:"required"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
}
