package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	"github.com/Yaswanth6303/Timetable-Project/internal/repository"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
)

// bcryptCost matches the cost factor the rest of the institution's tooling
// writes hashes with.
const bcryptCost = 10

type credentialStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Identity, error)
	FindByID(ctx context.Context, id string) (*models.Identity, error)
	UpdateProfile(ctx context.Context, id, firstName, lastName string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type identityWriter interface {
	CreateIdentity(ctx context.Context, identity *models.Identity) error
}

// AuthConfig defines one role's authentication parameters. Each role gets
// its own instance with its own signing secret.
type AuthConfig struct {
	Role        models.Role
	Secret      string
	TokenExpiry time.Duration
	Issuer      string
}

// AuthService implements signup, signin and account maintenance for one
// role. The same implementation serves admins, faculty and students; only
// the store, writer and config differ per instance. Roles whose signup
// needs extra fields (students) pass a nil writer and handle creation in
// their own service.
type AuthService struct {
	store     credentialStore
	writer    identityWriter
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService for one role.
func NewAuthService(store credentialStore, writer identityWriter, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{store: store, writer: writer, validator: validate, logger: logger, config: config}
}

// Role returns the role this instance authenticates.
func (s *AuthService) Role() models.Role {
	return s.config.Role
}

// RoleLabel returns the human form of the role for response messages.
func (s *AuthService) RoleLabel() string {
	switch s.config.Role {
	case models.RoleAdmin:
		return "Admin"
	case models.RoleFaculty:
		return "Faculty"
	case models.RoleStudent:
		return "Student"
	}
	return "User"
}

// Signup validates, hashes and persists a new identity. The duplicate
// pre-check is best-effort; the storage uniqueness constraint decides
// concurrent races, and its violation maps to the same conflict.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.Identity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}
	if s.writer == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "signup is not available for this role")
	}

	if _, err := s.store.FindByEmail(ctx, req.Email); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, s.RoleLabel()+" already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	identity := &models.Identity{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.writer.CreateIdentity(ctx, identity); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, s.RoleLabel()+" already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.logger.Info("identity created",
		zap.String("role", string(s.config.Role)),
		zap.String("id", identity.ID),
	)

	created := *identity
	created.PasswordHash = ""
	return &created, nil
}

// Signin verifies credentials and issues a signed token. Unknown email and
// wrong password produce byte-identical responses so callers cannot probe
// which accounts exist.
func (s *AuthService) Signin(ctx context.Context, req models.SigninRequest) (*models.SigninResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}

	if s.config.Secret == "" {
		s.logger.Error("signing secret not configured", zap.String("role", string(s.config.Role)))
		return nil, appErrors.Clone(appErrors.ErrConfiguration, "JWT Secret not defined")
	}

	identity, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	token, err := s.issueToken(identity)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	return &models.SigninResponse{Token: token}, nil
}

// UpdateProfile applies a partial name update to an identity.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.Identity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}

	identity, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, s.RoleLabel()+" not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if req.FirstName != "" {
		identity.FirstName = req.FirstName
	}
	if req.LastName != "" {
		identity.LastName = req.LastName
	}

	if err := s.store.UpdateProfile(ctx, id, identity.FirstName, identity.LastName); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile")
	}

	identity.PasswordHash = ""
	return identity, nil
}

// ChangePassword verifies the old password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}

	identity, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, s.RoleLabel()+" not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.OldPassword)); err != nil {
		return appErrors.Clone(appErrors.ErrInvalidCredentials, "Old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	if err := s.store.UpdatePassword(ctx, id, string(hash)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update password")
	}
	return nil
}

// ValidateToken parses and validates a token against this role's secret,
// returning the claims. Tokens signed under another role's secret fail here.
func (s *AuthService) ValidateToken(tokenString string) (*models.TokenClaims, error) {
	if s.config.Secret == "" {
		return nil, appErrors.Clone(appErrors.ErrConfiguration, "JWT Secret not defined")
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, appErrors.ErrUnauthorized.Message)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "")
	}

	return claims, nil
}

func (s *AuthService) issueToken(identity *models.Identity) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.TokenClaims{
		ID:    identity.ID,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}
