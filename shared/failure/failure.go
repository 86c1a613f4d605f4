package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that knows which HTTP status it maps to. Anything else
// that reaches a handler is reported as 500.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest wraps err as a 400. A nil err stays nil.
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

// NotFound takes the name of the missing thing, e.g. "pool not found".
func NotFound(entityName string) error {
	return newFailure(http.StatusNotFound, entityName)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// InvalidSignature rejects a webhook payload whose signature did not verify.
func InvalidSignature(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

// UpstreamFailure reports a failed or timed out call to Stripe or the CRM.
func UpstreamFailure(msg string) error {
	return newFailure(http.StatusBadGateway, msg)
}

// PersistenceFailure reports a database write that did not go through.
func PersistenceFailure(msg string) error {
	return newFailure(http.StatusInternalServerError, msg)
}

func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether err carries a Failure with the given code.
func Is(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}
