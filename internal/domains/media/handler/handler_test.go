package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/domains/media/service"
	"qbrain-backend/internal/shared/mocks"
)

func setupRouter() (*gin.Engine, *mocks.MockBlobStore) {
	gin.SetMode(gin.TestMode)
	blob := mocks.NewMockBlobStore()
	h := NewMediaHandler(service.NewMediaService(blob))

	r := gin.New()
	r.POST("/api/upload", h.Upload)
	return r, blob
}

func multipartRequest(t *testing.T, field, filename string, data []byte) *http.Request {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("note", "x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		URL      string `json:"url"`
		Filename string `json:"filename"`
	} `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestUpload_StoresUnderUploadsPrefix(t *testing.T) {
	r, blob := setupRouter()
	blob.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, "-poster.pdf")
	}), []byte("%PDF-1.4"), mock.Anything).Return("https://blob.test/qbrain/uploads/abc-poster.pdf", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "file", "poster.pdf", []byte("%PDF-1.4")))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "https://blob.test/qbrain/uploads/abc-poster.pdf", env.Data.URL)
	assert.True(t, strings.HasSuffix(env.Data.Filename, "-poster.pdf"))
	blob.AssertExpectations(t)
}

func TestUpload_NoFile(t *testing.T) {
	r, blob := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "", "", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "NO_FILE", decode(t, w).Error.Code)
	blob.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpload_RejectsExtension(t *testing.T) {
	r, blob := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "file", "run.exe", []byte("MZ")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FILE", decode(t, w).Error.Code)
	blob.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
