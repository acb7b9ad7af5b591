package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role identifies which credential collection and signing secret an
// identity belongs to.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleFaculty Role = "FACULTY"
	RoleStudent Role = "STUDENT"
)

// Identity is an authenticable account. Admins and faculty members store
// exactly these fields; students add enrollment data on top.
type Identity struct {
	ID           string    `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Student is an identity with enrollment fields. Email and studentId are
// each unique within the students collection.
type Student struct {
	Identity
	StudentID       string `db:"student_id" json:"studentId"`
	School          string `db:"school" json:"school"`
	Program         string `db:"program" json:"program"`
	Batch           string `db:"batch" json:"batch"`
	GraduationLevel string `db:"graduation_level" json:"graduationLevel"`
}

// SignupRequest is the shared signup payload for admins and faculty.
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3,max=20"`
	LastName  string `json:"lastName" validate:"required,min=3,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=4,max=20"`
}

// StudentSignupRequest extends signup with enrollment fields.
type StudentSignupRequest struct {
	FirstName       string `json:"firstName" validate:"required,min=3,max=20"`
	LastName        string `json:"lastName" validate:"required,min=3,max=20"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4,max=20"`
	StudentID       string `json:"studentId" validate:"required,min=3"`
	School          string `json:"school" validate:"required,min=2"`
	Program         string `json:"program" validate:"required,min=2"`
	Batch           string `json:"batch" validate:"required"`
	GraduationLevel string `json:"graduationLevel" validate:"required,oneof=UG PG"`
}

// SigninRequest holds credentials for any role.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=20"`
}

// SigninResponse returns the issued token.
type SigninResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest is a partial name update.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,min=3,max=20"`
	LastName  string `json:"lastName" validate:"omitempty,min=3,max=20"`
}

// ChangePasswordRequest swaps the stored password after verifying the old one.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required,min=4,max=20"`
	NewPassword string `json:"newPassword" validate:"required,min=4,max=20"`
}

// TokenClaims is the JWT payload. The subject id and email are the only
// identity data a token carries.
type TokenClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
