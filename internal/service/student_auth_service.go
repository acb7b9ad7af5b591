package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	"github.com/Yaswanth6303/Timetable-Project/internal/repository"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
)

type studentStore interface {
	credentialStore
	ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
}

// StudentAuthService layers the student-specific signup (enrollment fields,
// dual uniqueness on email and studentId) on top of the shared auth flow.
// Signin and token handling come from the embedded per-role AuthService.
type StudentAuthService struct {
	*AuthService
	repo studentStore
}

// NewStudentAuthService constructs the student auth service.
func NewStudentAuthService(repo studentStore, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *StudentAuthService {
	return &StudentAuthService{
		AuthService: NewAuthService(repo, nil, validate, logger, config),
		repo:        repo,
	}
}

// SignupStudent validates and persists a new student. Email or studentId
// collisions conflict; the pre-check only short-circuits the common case,
// the table constraints decide races.
func (s *StudentAuthService) SignupStudent(ctx context.Context, req models.StudentSignupRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}

	exists, err := s.repo.ExistsByEmailOrStudentID(ctx, req.Email, req.StudentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Student already exists with the provided email or student ID")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	student := &models.Student{
		Identity: models.Identity{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: string(hash),
		},
		StudentID:       req.StudentID,
		School:          req.School,
		Program:         req.Program,
		Batch:           req.Batch,
		GraduationLevel: req.GraduationLevel,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Student already exists with the provided email or student ID")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.logger.Info("student created", zap.String("id", student.ID))

	created := *student
	created.PasswordHash = ""
	return &created, nil
}
