package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	dataDir string
}

func NewHealthHandler(dataDir string) *HealthHandler {
	return &HealthHandler{dataDir: dataDir}
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ping"})
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz probes that the data directory is writable, since the flat-file
// collections are the only dependency this server has.
func (h *HealthHandler) Readyz(c *gin.Context) {
	if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "storage": "unavailable"})
		return
	}
	probe := filepath.Join(h.dataDir, ".readyz")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "storage": "unavailable"})
		return
	}
	_ = os.Remove(probe)

	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": "writable"})
}
