package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error that knows which HTTP status it should surface as.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ErrInvalidAPIKey = &Failure{Code: http.StatusForbidden, Message: "invalid api key"}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest keeps the message of err. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict reports a write that lost against the current state: a duplicate pending approval, a
// second decision, a concurrent transition.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// InvalidStateTransition names the entity and both ends of a lifecycle move that is not allowed.
func InvalidStateTransition(entityName, id, from, to string) error {
	return newFailure(http.StatusUnprocessableEntity, fmt.Sprintf("%s %s cannot move from %s to %s", entityName, id, from, to))
}

// InternalError keeps the message of err. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusInternalServerError, err.Error())
}

// GetCode returns the status carried by err anywhere in its chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func Is(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}
