package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"dashboard/internal/validator"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// validatorのエラーを400にする
func badRequest(err error) error {
	var ie *validator.InputError
	if errors.As(err, &ie) {
		return NewHTTPError(http.StatusBadRequest, ie.Message)
	}
	return NewHTTPError(http.StatusBadRequest, "invalid input")
}
