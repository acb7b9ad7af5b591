package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Yaswanth6303/Timetable-Project/internal/middleware"
	"github.com/Yaswanth6303/Timetable-Project/internal/service"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
	"github.com/Yaswanth6303/Timetable-Project/pkg/response"
)

// FacultyHandler wires the faculty-facing timetable views.
type FacultyHandler struct {
	timetables *service.TimetableService
}

// NewFacultyHandler creates a new handler.
func NewFacultyHandler(timetables *service.TimetableService) *FacultyHandler {
	return &FacultyHandler{timetables: timetables}
}

// MyTimetable godoc
// @Summary View own timetable
// @Description List the authenticated faculty member's schedule
// @Tags Faculty
// @Produce json
// @Param token header string true "Faculty JWT"
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /faculty/mytimetable [get]
func (h *FacultyHandler) MyTimetable(c *gin.Context) {
	id, ok := middleware.SubjectID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	rows, err := h.timetables.OwnTimetable(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Timetable retrieved successfully", response.Body{"timetable": rows})
}

// MasterTimetable godoc
// @Summary View the master timetable
// @Description List every master timetable row with resolved references
// @Tags Faculty
// @Produce json
// @Param token header string true "Faculty JWT"
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /faculty/masterTimetable [get]
func (h *FacultyHandler) MasterTimetable(c *gin.Context) {
	rows, err := h.timetables.MasterTimetable(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Master timetable retrieved successfully", response.Body{"data": rows})
}

// AssignedCourses godoc
// @Summary View assigned courses
// @Description List the courses assigned to the authenticated faculty member
// @Tags Faculty
// @Produce json
// @Param token header string true "Faculty JWT"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /faculty/courses [get]
func (h *FacultyHandler) AssignedCourses(c *gin.Context) {
	id, ok := middleware.SubjectID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	courses, err := h.timetables.AssignedCourses(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Assigned courses retrieved successfully", response.Body{"courses": courses})
}
