package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/services"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

var errInvalidRequestBody = errors.New("invalid request body")

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newUnauthorizedError(message string) apiError {
	return newAPIError(http.StatusUnauthorized, message)
}

func newConflictError(message string) apiError {
	return newAPIError(http.StatusConflict, message)
}

// abortTaskError maps the service error taxonomy onto HTTP statuses:
// validation failures are 400 with the verbatim message, a missing
// task is 404 and a task owned by someone else is 403. A duplicate
// ID is an internal invariant violation and surfaces as 500.
func abortTaskError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		abort(c, newBadRequestError(validationErr.Message))
	case errors.Is(err, storage.ErrTaskNotFound):
		abort(c, newAPIError(http.StatusNotFound, storage.ErrTaskNotFound.Error()))
	case errors.Is(err, services.ErrTaskForbidden):
		abort(c, newAPIError(http.StatusForbidden, services.ErrTaskForbidden.Error()))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}
