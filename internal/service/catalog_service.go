package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	"github.com/Yaswanth6303/Timetable-Project/internal/repository"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
)

type directoryStore interface {
	Create(ctx context.Context, entry *models.FacultyDirectoryEntry) error
}

type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
}

type roomStore interface {
	Create(ctx context.Context, room *models.Room) error
}

// CatalogService creates the admin-maintained reference data: faculty
// directory entries, courses and rooms.
type CatalogService struct {
	directory directoryStore
	courses   courseStore
	rooms     roomStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(directory directoryStore, courses courseStore, rooms roomStore, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CatalogService{directory: directory, courses: courses, rooms: rooms, validator: validate, logger: logger}
}

// AddFaculty creates a faculty directory entry.
func (s *CatalogService) AddFaculty(ctx context.Context, req models.AddFacultyRequest) (*models.FacultyDirectoryEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Validation Error")
	}

	entry := &models.FacultyDirectoryEntry{
		FacultyID:   req.FacultyID,
		FacultyName: req.FacultyName,
		School:      req.School,
	}
	if err := s.directory.Create(ctx, entry); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Faculty already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error adding faculty")
	}
	return entry, nil
}

// AddCourse creates a course. Credits must be positive.
func (s *CatalogService) AddCourse(ctx context.Context, req models.AddCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Validation Error")
	}

	course := &models.Course{
		CourseCode:  req.CourseCode,
		CourseTitle: req.CourseTitle,
		Basket:      req.Basket,
		Credits:     req.Credits,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Course already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error adding course")
	}
	return course, nil
}

// AddRoom creates a room. Capacity must be positive.
func (s *CatalogService) AddRoom(ctx context.Context, req models.AddRoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Validation Error")
	}

	room := &models.Room{
		RoomNumber:  req.RoomNumber,
		BlockNumber: req.BlockNumber,
		RoomType:    req.RoomType,
		Capacity:    req.Capacity,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error adding room")
	}
	return room, nil
}
