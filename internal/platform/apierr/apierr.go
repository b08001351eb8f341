package apierr

import (
	"fmt"
	"net/http"
)

// FieldError is one entry of a per-field validation report.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Status int
	Code   string
	Err    error
	Fields []FieldError
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

func NotFound(what string) *Error {
	return &Error{Status: http.StatusNotFound, Code: "not_found", Err: fmt.Errorf("%s not found", what)}
}

func Validation(fields []FieldError) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Code:   "validation_failed",
		Err:    fmt.Errorf("validation failed on %d field(s)", len(fields)),
		Fields: fields,
	}
}
