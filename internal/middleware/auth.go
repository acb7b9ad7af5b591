package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Yaswanth6303/Timetable-Project/internal/service"
	appErrors "github.com/Yaswanth6303/Timetable-Project/pkg/errors"
	"github.com/Yaswanth6303/Timetable-Project/pkg/response"
)

// ContextSubjectKey is the gin context key storing the authenticated
// account id extracted from the token.
const ContextSubjectKey = "currentSubject"

// TokenAuth protects a role's route group. It reads the raw JWT from the
// custom "token" request header and verifies it against that role's secret,
// so a token minted for one role never authenticates against another. A
// missing or invalid token aborts the request before any handler runs.
func TokenAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("token")
		if token == "" {
			response.Error(c, appErrors.ErrTokenMissing)
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextSubjectKey, claims.Subject)
		c.Next()
	}
}

// SubjectID returns the authenticated account id set by TokenAuth.
func SubjectID(c *gin.Context) (string, bool) {
	value, ok := c.Get(ContextSubjectKey)
	if !ok {
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
