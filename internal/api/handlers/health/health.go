package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-chatbot/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 健康檢查響應
type Response struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Version   string         `json:"version"`
	Model     string         `json:"model"`
	Uptime    string         `json:"uptime"`
	Runtime   map[string]any `json:"runtime"`
}

// Handler 健康檢查處理器
type Handler struct {
	version string
	model   string
	started time.Time
	now     func() time.Time
}

// NewHandler 創建健康檢查處理器
func NewHandler(version, model string) *Handler {
	return &Handler{version: version, model: model, started: time.Now(), now: time.Now}
}

// Health 回傳版本、模型與執行期資訊
func (h *Handler) Health(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	now := h.now()
	resp := Response{
		Status:    "ok",
		Timestamp: now,
		Version:   h.version,
		Model:     h.model,
		Uptime:    now.Sub(h.started).Round(time.Second).String(),
		Runtime: map[string]any{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, resp)
}

// Ready 就緒檢查
func (h *Handler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live 存活檢查
func (h *Handler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
