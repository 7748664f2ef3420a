// Package router 提供 HTTP 路由注册
// 本文件定义群组相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterGroupRoutes 注册群组相关路由
// 包括群组基本操作与成员管理
func (rt *Router) RegisterGroupRoutes(rg *gin.RouterGroup) {
	groupGroup := rg.Group("/group")
	{
		// ===== 群组基本操作 =====
		groupGroup.POST("/createGroup", rt.handlers.Group.CreateGroup)      // 创建群组
		groupGroup.POST("/deleteGroup", rt.handlers.Group.DeleteGroup)      // 删除群组（级联清成员关系）
		groupGroup.GET("/getGroupInfo", rt.handlers.Group.GetGroupInfo)     // 获取群组详情
		groupGroup.GET("/getGroupByName", rt.handlers.Group.GetGroupByName) // 按名称获取群组详情
		groupGroup.GET("/loadMyGroup", rt.handlers.Group.LoadMyGroup)       // 获取我创建的群组
		groupGroup.GET("/getGroupList", rt.handlers.Group.GetGroupList)     // 群组列表

		// ===== 群成员管理 =====
		groupGroup.POST("/addMember", rt.handlers.Group.AddMember)       // 添加群成员
		groupGroup.POST("/removeMember", rt.handlers.Group.RemoveMember) // 移除群成员
	}
}
