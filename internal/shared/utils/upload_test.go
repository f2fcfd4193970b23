package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/infrastructure/storage"
)

func multipartContext(t *testing.T, fields map[string]string, file string, data []byte) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != "" {
		fw, err := mw.CreateFormFile("file", file)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c
}

func TestReadFormFile(t *testing.T) {
	c := multipartContext(t, nil, "cv.pdf", []byte("%PDF-1.4"))
	f, err := ReadFormFile(c, "file")
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", f.Filename)
	assert.Equal(t, "pdf", f.Ext())
	assert.Equal(t, int64(8), f.Size)

	f, err = ReadFormFile(multipartContext(t, nil, "", nil), "file")
	assert.NoError(t, err)
	assert.Nil(t, f)
}

func TestReadFormFile_TooLarge(t *testing.T) {
	c := multipartContext(t, nil, "big.pdf", make([]byte, storage.MaxUploadSize+1))
	_, err := ReadFormFile(c, "file")
	assert.ErrorIs(t, err, storage.ErrFileTooLarge)
}

func TestBindPayload_Multipart(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	c := multipartContext(t, map[string]string{"data": `{"name":"Asha"}`}, "", nil)
	require.NoError(t, BindPayload(c, "data", &dst))
	assert.Equal(t, "Asha", dst.Name)

	c = multipartContext(t, map[string]string{"other": "x"}, "", nil)
	assert.ErrorIs(t, BindPayload(c, "data", &dst), ErrInvalidPayload)

	c = multipartContext(t, map[string]string{"data": `{"name":`}, "", nil)
	assert.ErrorIs(t, BindPayload(c, "data", &dst), ErrInvalidPayload)
}
