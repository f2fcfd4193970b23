package model

import (
	"errors"
	"net/http"
)

var (
	ErrHackathonNotFound = errors.New("achievement not found")
	ErrNothingToUpdate   = errors.New("no fields to update")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrHackathonNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNothingToUpdate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrHackathonNotFound):
		return "ACHIEVEMENT_NOT_FOUND"
	case errors.Is(err, ErrNothingToUpdate):
		return "NOTHING_TO_UPDATE"
	default:
		return "INTERNAL_ERROR"
	}
}
