package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
)

// Body is the wire shape for every response: a human-readable msg plus
// whatever payload fields the endpoint adds.
type Body map[string]interface{}

// JSON sends a success response with a message and optional payload fields.
func JSON(c *gin.Context, status int, msg string, payload Body) {
	body := Body{"msg": msg}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, msg string, payload Body) {
	JSON(c, http.StatusOK, msg, payload)
}

// Created responds with HTTP 201.
func Created(c *gin.Context, msg string, payload Body) {
	JSON(c, http.StatusCreated, msg, payload)
}

// Error converts any error into the common {msg, errors?} structure.
// Validation errors carry their field violations; everything else is just
// the message.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	body := Body{"msg": appErr.Message}
	if appErr.Code == appErrors.ErrValidation.Code && appErr.Err != nil {
		body["errors"] = appErr.Err.Error()
	}
	c.JSON(appErr.Status, body)
}
