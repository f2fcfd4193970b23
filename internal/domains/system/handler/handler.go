package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/infrastructure/cache"
)

const (
	StatusOK       = "OK"
	StatusDegraded = "DEGRADED"
)

// Pinger được implement bởi docstore.Store và cache.Cache
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse - body của GET /api/health
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

type HealthHandler struct {
	store   Pinger
	cache   Pinger
	version string
	now     func() time.Time
}

func NewHealthHandler(store, cache Pinger, version string) *HealthHandler {
	return &HealthHandler{store: store, cache: cache, version: version, now: time.Now}
}

// Health - GET /api/health. Luôn trả 200; store lỗi thì status DEGRADED.
func (h *HealthHandler) Health(c *gin.Context) {
	res := HealthResponse{
		Status:    StatusOK,
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Services:  map[string]string{},
	}

	// Check store
	res.Services["store"] = ping(c.Request.Context(), h.store)
	if res.Services["store"] != "ok" {
		res.Status = StatusDegraded
	}

	// Check cache (không có cache thì vẫn chạy được)
	res.Services["cache"] = ping(c.Request.Context(), h.cache)

	c.JSON(http.StatusOK, res)
}

func ping(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disconnected"
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := p.Ping(ctx)
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, cache.ErrCacheDisabled):
		return "disabled"
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
