package model

import (
	"errors"
	"net/http"
)

var (
	ErrMemberNotFound  = errors.New("team member not found")
	ErrNothingToUpdate = errors.New("no fields to update")
)

// ToHTTPStatus maps domain errors to HTTP status codes
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNothingToUpdate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorCode maps domain errors to error codes
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		return "MEMBER_NOT_FOUND"
	case errors.Is(err, ErrNothingToUpdate):
		return "NOTHING_TO_UPDATE"
	default:
		return "INTERNAL_ERROR"
	}
}
