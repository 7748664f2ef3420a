package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler 存活探针处理器
type HealthHandler struct{}

// NewHealthHandler 创建存活探针处理器实例
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health 存活探针
// GET /health
// 固定返回健康状态，不检查依赖
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "class-directory-server"})
}
