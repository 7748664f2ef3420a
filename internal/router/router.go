// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"class_directory_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器
// 持有 Handler 聚合实例，各子模块路由以方法形式挂载
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 http_server.Init() 中调用
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	// 存活探针，不进业务路由组
	r.GET("/health", rt.handlers.Health.Health)

	root := r.Group("")
	rt.RegisterUserRoutes(root)    // 用户路由
	rt.RegisterGroupRoutes(root)   // 群组路由
	rt.RegisterAccountRoutes(root) // 账号流程路由
}
