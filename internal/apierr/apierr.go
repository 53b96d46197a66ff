package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to clients. Each maps to a default HTTP status.
const (
	CodeInvalidInput        = "invalid_input"
	CodeAuthRequired        = "auth_required"
	CodeNotFound            = "not_found"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeUnparseableResponse = "unparseable_response"
	CodeEmptyResult         = "empty_result"
	CodeNothingToSave       = "nothing_to_save"
	CodePersistenceFailure  = "persistence_failure"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func InvalidInput(err error) *Error {
	return New(http.StatusBadRequest, CodeInvalidInput, err)
}

func AuthRequired(err error) *Error {
	return New(http.StatusUnauthorized, CodeAuthRequired, err)
}

func NotFound(err error) *Error {
	return New(http.StatusNotFound, CodeNotFound, err)
}

func UpstreamUnavailable(err error) *Error {
	return New(http.StatusBadGateway, CodeUpstreamUnavailable, err)
}

func UnparseableResponse(err error) *Error {
	return New(http.StatusBadGateway, CodeUnparseableResponse, err)
}

func EmptyResult(err error) *Error {
	return New(http.StatusBadGateway, CodeEmptyResult, err)
}

func NothingToSave(err error) *Error {
	return New(http.StatusUnprocessableEntity, CodeNothingToSave, err)
}

func PersistenceFailure(err error) *Error {
	return New(http.StatusInternalServerError, CodePersistenceFailure, err)
}

// Code extracts the error code from err if it wraps an *Error.
func Code(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// Status extracts the HTTP status from err, defaulting to 500.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}

func Is(err error, code string) bool {
	return Code(err) == code
}
