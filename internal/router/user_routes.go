// Package router 提供 HTTP 路由注册
// 本文件定义用户相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes 注册用户相关路由
func (rt *Router) RegisterUserRoutes(rg *gin.RouterGroup) {
	userGroup := rg.Group("/user")
	{
		userGroup.POST("/createUser", rt.handlers.User.CreateUser)                  // 创建用户
		userGroup.GET("/getUserByExternalId", rt.handlers.User.GetUserByExternalId) // 按平台身份查询
		userGroup.GET("/getUserByUsername", rt.handlers.User.GetUserByUsername)     // 按用户名查询
		userGroup.GET("/getUserList", rt.handlers.User.GetUserList)                 // 用户列表
		userGroup.POST("/setActivated", rt.handlers.User.SetActivated)              // 设置激活状态
		userGroup.POST("/bindExternalId", rt.handlers.User.BindExternalId)          // 补绑平台身份
	}
}
