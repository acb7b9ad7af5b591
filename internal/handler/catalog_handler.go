package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	"github.com/Yaswanth6303/Timetable-Project/internal/service"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
	"github.com/Yaswanth6303/Timetable-Project/pkg/response"
)

// CatalogHandler wires the admin reference-data endpoints: faculty
// directory entries, courses and rooms.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// AddFaculty godoc
// @Summary Add a faculty directory entry
// @Tags Catalog
// @Accept json
// @Produce json
// @Param token header string true "Admin JWT"
// @Param payload body models.AddFacultyRequest true "Faculty payload"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /admin/addFaculty [post]
func (h *CatalogHandler) AddFaculty(c *gin.Context) {
	var req models.AddFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Validation Error"))
		return
	}

	entry, err := h.service.AddFaculty(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Faculty added successfully", response.Body{"faculty": entry})
}

// AddCourse godoc
// @Summary Add a course
// @Tags Catalog
// @Accept json
// @Produce json
// @Param token header string true "Admin JWT"
// @Param payload body models.AddCourseRequest true "Course payload"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /admin/addCourse [post]
func (h *CatalogHandler) AddCourse(c *gin.Context) {
	var req models.AddCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Validation Error"))
		return
	}

	course, err := h.service.AddCourse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Course added successfully", response.Body{"course": course})
}

// AddRoom godoc
// @Summary Add a room
// @Tags Catalog
// @Accept json
// @Produce json
// @Param token header string true "Admin JWT"
// @Param payload body models.AddRoomRequest true "Room payload"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /admin/addRoom [post]
func (h *CatalogHandler) AddRoom(c *gin.Context) {
	var req models.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Validation Error"))
		return
	}

	room, err := h.service.AddRoom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Room added successfully", response.Body{"room": room})
}
