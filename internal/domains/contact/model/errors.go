package model

import (
	"errors"
	"net/http"
)

var (
	ErrMessageNotFound = errors.New("contact message not found")
	ErrInvalidStatus   = errors.New("invalid message status")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMessageNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMessageNotFound):
		return "MESSAGE_NOT_FOUND"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	default:
		return "INTERNAL_ERROR"
	}
}
