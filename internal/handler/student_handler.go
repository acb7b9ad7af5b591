package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	"github.com/Yaswanth6303/Timetable-Project/internal/service"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
	"github.com/Yaswanth6303/Timetable-Project/pkg/response"
)

// StudentHandler wires the student signup and signin endpoints. Student
// signup carries enrollment fields the other roles do not have, so it gets
// its own handler on top of the shared signin.
type StudentHandler struct {
	service *service.StudentAuthService
}

// NewStudentHandler creates a new handler.
func NewStudentHandler(svc *service.StudentAuthService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// Signup godoc
// @Summary Register a student account
// @Description Create a student account with enrollment details
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.StudentSignupRequest true "Student signup payload"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /student/signup [post]
func (h *StudentHandler) Signup(c *gin.Context) {
	var req models.StudentSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Improper Credentials"))
		return
	}

	student, err := h.service.SignupStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Student created successfully", response.Body{"user": student})
}

// Signin godoc
// @Summary Sign in as a student
// @Description Exchange email and password for a student-scoped JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.SigninRequest true "Signin payload"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /student/signin [post]
func (h *StudentHandler) Signin(c *gin.Context) {
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

	response.OK(c, "Student signed in successfully", response.Body{"token": res.Token})
}
