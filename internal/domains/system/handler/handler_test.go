package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/infrastructure/cache"
	"qbrain-backend/internal/shared/testutil"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func get(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var res HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return w.Code, res
}

func TestHealth_OKWithTimestamp(t *testing.T) {
	h := NewHealthHandler(testutil.NewStore(t), cache.NoopCache{}, "1.2.3")

	before := time.Now().UTC().Truncate(time.Second)
	code, res := get(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "1.2.3", res.Version)

	ts, err := time.Parse(time.RFC3339, res.Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(before))
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)

	assert.Equal(t, "ok", res.Services["store"])
	assert.Equal(t, "disabled", res.Services["cache"])
}

func TestHealth_DegradedStillReturns200(t *testing.T) {
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })
	h := NewHealthHandler(down, nil, "1.0.0")
	h.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	code, res := get(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusDegraded, res.Status)
	assert.Equal(t, "2025-01-02T03:04:05Z", res.Timestamp)
	assert.Equal(t, "error: connection refused", res.Services["store"])
	assert.Equal(t, "disconnected", res.Services["cache"])
}
