package response

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const internalErrorMessage = "an unexpected error occurred, please try again later"

// Envelope is the body of every API response, success or failure.
type Envelope struct {
	Success    bool      `json:"success"`
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Data       any       `json:"data,omitempty"`
	Errors     []string  `json:"errors,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperror.Unauthorized("authorization required")
	}

	str, ok := userIDStr.(string)
	if !ok {
		return uuid.Nil, apperror.Unauthorized("authorization required")
	}

	userID, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, apperror.Unauthorized("invalid token subject")
	}

	return userID, nil
}

// ParamID parses a UUID path parameter.
func ParamID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.Validation(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

func OK(c *gin.Context, message string, data any) {
	Success(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data any) {
	Success(c, http.StatusCreated, message, data)
}

// Success writes a success envelope. code must be 2xx.
func Success(c *gin.Context, code int, message string, data any) {
	write(c, Envelope{
		Success:    true,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	})
}

// Error hands err to the boundary: the request is aborted and the error
// middleware renders the failure envelope once the handler chain unwinds.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Failure renders err as a failure envelope. Only taxonomy errors expose their
// message; everything else gets a generic message, plus diagnostics when
// detail is non-empty.
func Failure(c *gin.Context, err error, detail []string) {
	env := Envelope{
		Success:    false,
		StatusCode: http.StatusInternalServerError,
		Message:    internalErrorMessage,
		Timestamp:  time.Now().UTC(),
	}

	if appErr, ok := apperror.As(err); ok && appErr.Kind != apperror.KindInternal {
		env.StatusCode = appErr.Status()
		env.Message = appErr.Message
		env.Errors = appErr.Details
		if appErr.RetryAfter > 0 {
			c.Header("Retry-After", strconv.Itoa(int(appErr.RetryAfter.Seconds()+0.5)))
		}
	} else if len(detail) > 0 {
		env.Errors = detail
	}

	write(c, env)
}

func write(c *gin.Context, env Envelope) {
	// status first: gin freezes it once the body starts
	c.Status(env.StatusCode)
	c.JSON(env.StatusCode, env)
}

// Fail writes a failure envelope for statuses outside the taxonomy, such as
// 405 or 503. errs become the envelope's errors list.
func Fail(c *gin.Context, code int, message string, errs ...string) {
	write(c, Envelope{
		Success:    false,
		StatusCode: code,
		Message:    message,
		Errors:     errs,
		Timestamp:  time.Now().UTC(),
	})
	c.Abort()
}
