// Package router 提供 HTTP 路由注册
// 本文件定义账号流程相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes 注册账号流程相关路由
// 这些接口组合了本地存储与注册中心、智能体两个上游
func (rt *Router) RegisterAccountRoutes(rg *gin.RouterGroup) {
	accountGroup := rg.Group("/account")
	{
		accountGroup.POST("/createTeacher", rt.handlers.Account.CreateTeacher) // 创建教师账号
		accountGroup.POST("/createStudent", rt.handlers.Account.CreateStudent) // 创建学生账号
		accountGroup.GET("/directory", rt.handlers.Account.GetDirectory)       // 合并目录
		accountGroup.POST("/askTutor", rt.handlers.Account.AskTutor)           // 学生答疑
	}
}
