package model

import (
	"errors"
	"net/http"
)

var (
	ErrPostNotFound  = errors.New("blog post not found")
	ErrInvalidStatus = errors.New("invalid status filter")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return "POST_NOT_FOUND"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	default:
		return "INTERNAL_ERROR"
	}
}
