package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/domains/application/repository"
	"qbrain-backend/internal/domains/application/service"
	"qbrain-backend/internal/shared/mocks"
	"qbrain-backend/internal/shared/testutil"
)

const applicationJSON = `{
	"personalInfo": {"fullName": "Ravi Kumar", "email": "ravi@example.com", "preferredRole": "Backend Developer"},
	"quizResults": {"score": 70, "correctAnswers": 7, "totalQuestions": 10},
	"interviewSlot": {"date": "2025-02-10", "time": "14:00"}
}`

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockBlobStore, *mocks.MockSender) {
	gin.SetMode(gin.TestMode)
	blob := mocks.NewMockBlobStore()
	sender := &mocks.MockSender{}
	svc := service.NewApplicationService(
		repository.NewApplicationRepository(testutil.NewStore(t)),
		blob, testutil.Composer(t), sender)

	r := gin.New()
	r.POST("/api/application", NewApplicationHandler(svc).Submit)
	return r, blob, sender
}

func submit(t *testing.T, r *gin.Engine, fields map[string]string, resumeName string, resume []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if resumeName != "" {
		fw, err := mw.CreateFormFile("resume", resumeName)
		require.NoError(t, err)
		_, err = fw.Write(resume)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/application", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmit_MultipartWithResume(t *testing.T) {
	r, blob, sender := setupRouter(t)
	blob.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(blob.URL("resumes/x-ravi-cv.pdf"), nil).Once()
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	w := submit(t, r, map[string]string{"applicationData": applicationJSON}, "ravi-cv.pdf", []byte("%PDF-1.4 resume"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID        string `json:"id"`
			EmailSent bool   `json:"emailSent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.ID)
	assert.True(t, body.Data.EmailSent)
	assert.Len(t, sender.Sent, 2)
	blob.AssertExpectations(t)
}

func TestSubmit_MultipartWithoutResume(t *testing.T) {
	r, blob, sender := setupRouter(t)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	w := submit(t, r, map[string]string{"applicationData": applicationJSON}, "", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	blob.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_MissingApplicationData(t *testing.T) {
	r, _, sender := setupRouter(t)

	w := submit(t, r, map[string]string{"other": "x"}, "ravi-cv.pdf", []byte("%PDF-1.4"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmit_RejectsExecutableResume(t *testing.T) {
	r, blob, sender := setupRouter(t)

	w := submit(t, r, map[string]string{"applicationData": applicationJSON}, "cv.exe", []byte("MZ\x90\x00"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_FILE")
	blob.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
