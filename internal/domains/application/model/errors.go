package model

import (
	"errors"
	"net/http"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrApplicationNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrApplicationNotFound):
		return "APPLICATION_NOT_FOUND"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	default:
		return "INTERNAL_ERROR"
	}
}
