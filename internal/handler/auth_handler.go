package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Yaswanth6303/Timetable-Project/internal/middleware"
	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	"github.com/Yaswanth6303/Timetable-Project/internal/service"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
	"github.com/Yaswanth6303/Timetable-Project/pkg/response"
)

// AuthHandler wires one role's signup and signin endpoints to its auth
// service. The admin and faculty route groups each get their own instance.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Signup godoc
// @Summary Register an account
// @Description Create an account for this role with a unique email
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.SignupRequest true "Signup payload"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Improper Credentials"))
		return
	}

	identity, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, h.service.RoleLabel()+" created successfully", response.Body{"user": identity})
}

// Signin godoc
// @Summary Sign in
// @Description Exchange email and password for a role-scoped JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.SigninRequest true "Signin payload"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Improper Credentials"))
		return
	}

	res, err := h.service.Signin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.service.RoleLabel()+" signed in successfully", response.Body{"token": res.Token})
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Update the authenticated account's name fields
// @Tags Profile
// @Accept json
// @Produce json
// @Param token header string true "JWT"
// @Param payload body models.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /updateMyProfile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	id, ok := middleware.SubjectID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Improper Credentials"))
		return
	}

	identity, err := h.service.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", response.Body{"user": identity})
}

// ChangePassword godoc
// @Summary Change own password
// @Description Replace the account password after checking the old one
// @Tags Profile
// @Accept json
// @Produce json
// @Param token header string true "JWT"
// @Param payload body models.ChangePasswordRequest true "Password payload"
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	id, ok := middleware.SubjectID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Improper Credentials"))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password changed successfully", nil)
}
