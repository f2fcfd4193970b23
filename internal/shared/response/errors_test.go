package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/utils"
)

func common(err error) (bool, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return Common(c, err), w
}

func TestCommon(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"too large", fmt.Errorf("upload: %w", storage.ErrFileTooLarge), http.StatusRequestEntityTooLarge, ""},
		{"bad type", storage.ErrFileTypeNotAllow, http.StatusBadRequest, "INVALID_FILE"},
		{"payload", fmt.Errorf("%w: missing", utils.ErrInvalidPayload), http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handled, w := common(tt.err)
			assert.True(t, handled)
			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Contains(t, w.Body.String(), tt.code)
			}
		})
	}
}

func TestCommon_DomainErrorNotHandled(t *testing.T) {
	handled, _ := common(errors.New("member not found"))
	assert.False(t, handled)
}
