package model

import (
	"errors"
	"net/http"
)

const FormFileField = "file"

var ErrNoFile = errors.New("no file uploaded")

// UploadResult - response của POST /api/upload
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNoFile) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func ToErrorCode(err error) string {
	if errors.Is(err, ErrNoFile) {
		return "NO_FILE"
	}
	return "INTERNAL_ERROR"
}
